package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// FileName is the manifest file name at the root of every pack.
const FileName = "manifest.json"

// FormatVersion is the manifest schema version written by Generate.
const FormatVersion = 2

// Kind is the pack flavour a manifest describes.
type Kind string

// Pack kinds.
const (
	KindBehavior Kind = "behavior"
	KindResource Kind = "resource"
)

// Module types.
const (
	ModuleData       = "data"
	ModuleClientData = "client_data"
	ModuleResources  = "resources"
)

// Label returns the human name used in default descriptions.
func (k Kind) Label() string {
	switch k {
	case KindBehavior:
		return "Behavior"
	case KindResource:
		return "Resource"
	}
	return string(k)
}

// Version is a [major, minor, patch] triple.
type Version [3]int

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// ParseVersion splits "1.2.3" into a Version. Missing parts are zero.
func ParseVersion(s string) (Version, error) {
	var v Version
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) == 0 || len(parts) > 3 || parts[0] == "" {
		return v, fmt.Errorf("invalid version %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version %q", s)
		}
		v[i] = n
	}
	return v, nil
}

// Document is the manifest.json layout.
type Document struct {
	FormatVersion int          `json:"format_version"`
	Header        Header       `json:"header"`
	Modules       []Module     `json:"modules"`
	Dependencies  []Dependency `json:"dependencies"`
}

// Header identifies the pack.
type Header struct {
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	UUID             string  `json:"uuid"`
	Version          Version `json:"version"`
	MinEngineVersion Version `json:"min_engine_version"`
}

// Module is one module entry of a pack.
type Module struct {
	Type        string  `json:"type"`
	UUID        string  `json:"uuid"`
	Version     Version `json:"version"`
	Description string  `json:"description,omitempty"`
}

// Dependency references another pack by UUID and version.
type Dependency struct {
	UUID    string  `json:"uuid"`
	Version Version `json:"version"`
}

// Kind derives the pack kind from the module list. ok is false when no
// module has a known type.
func (d *Document) Kind() (Kind, bool) {
	for _, m := range d.Modules {
		switch m.Type {
		case ModuleData, ModuleClientData:
			return KindBehavior, true
		case ModuleResources:
			return KindResource, true
		}
	}
	return "", false
}

// AsDependency returns the entry other packs use to depend on this one.
func (d *Document) AsDependency() Dependency {
	return Dependency{UUID: d.Header.UUID, Version: d.Header.Version}
}

// DependsOn reports whether the manifest lists uuid as a dependency.
func (d *Document) DependsOn(uuid string) bool {
	for _, dep := range d.Dependencies {
		if dep.UUID == uuid {
			return true
		}
	}
	return false
}
