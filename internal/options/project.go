package options

import (
	"strings"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/manifest"
)

// ProjectKind selects which packs a new project contains.
type ProjectKind string

// Supported project kinds.
const (
	KindAddOn        ProjectKind = "add-on"
	KindBehaviorPack ProjectKind = "behavior-pack"
	KindResourcePack ProjectKind = "resource-pack"
)

// DefaultProjectName is used when "new" runs without a name.
const DefaultProjectName = "My Add-on"

const (
	defaultVersion   = "1.0.0"
	defaultMinEngine = "1.17.0"
)

// ProjectKinds lists every ProjectKind in menu order.
var ProjectKinds = []ProjectKind{KindAddOn, KindBehaviorPack, KindResourcePack}

// ParseProjectKind maps s to a ProjectKind. Blank input means add-on.
func ParseProjectKind(s string) (ProjectKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KindAddOn, nil
	}
	for _, k := range ProjectKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", malformed("type", "unknown project type %q", s)
}

// HasBehaviorPack reports whether the kind creates a behavior pack.
func (k ProjectKind) HasBehaviorPack() bool {
	return k == KindAddOn || k == KindBehaviorPack
}

// HasResourcePack reports whether the kind creates a resource pack.
func (k ProjectKind) HasResourcePack() bool {
	return k == KindAddOn || k == KindResourcePack
}

// Project is the raw option record for a new project.
type Project struct {
	Name                string `yaml:"name" json:"name"`
	FolderName          string `yaml:"folder_name,omitempty" json:"folder_name,omitempty"`
	Type                string `yaml:"type,omitempty" json:"type,omitempty"`
	Namespace           string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Version             string `yaml:"version,omitempty" json:"version,omitempty"`
	MinEngineVersion    string `yaml:"min_engine_version,omitempty" json:"min_engine_version,omitempty"`
	BehaviorDescription string `yaml:"behavior_description,omitempty" json:"behavior_description,omitempty"`
	ResourceDescription string `yaml:"resource_description,omitempty" json:"resource_description,omitempty"`
	PreCreateFiles      *bool  `yaml:"pre_create_files,omitempty" json:"pre_create_files,omitempty"`
}

// ResolvedProject is a validated project record.
type ResolvedProject struct {
	Name                string
	FolderName          string
	Kind                ProjectKind
	Namespace           string
	Version             manifest.Version
	MinEngineVersion    manifest.Version
	BehaviorDescription string
	ResourceDescription string
	PreCreateFiles      bool
}

// ResolveProject validates opts and applies every fallback. minEngine is the
// configured default minimum engine version; blank uses 1.17.0.
func ResolveProject(opts Project, minEngine string) (ResolvedProject, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = DefaultProjectName
	}

	folder := strings.TrimSpace(opts.FolderName)
	if folder == "" {
		folder = name
	}
	folder = identifier.NormalizePathName(folder)
	if folder == "" {
		return ResolvedProject{}, malformed("folder_name", "%q has no usable characters", opts.FolderName)
	}

	kind, err := ParseProjectKind(opts.Type)
	if err != nil {
		return ResolvedProject{}, err
	}

	version, err := manifest.ParseVersion(orDefault(opts.Version, defaultVersion))
	if err != nil {
		return ResolvedProject{}, malformed("version", "%v", err)
	}
	if minEngine == "" {
		minEngine = defaultMinEngine
	}
	engine, err := manifest.ParseVersion(orDefault(opts.MinEngineVersion, minEngine))
	if err != nil {
		return ResolvedProject{}, malformed("min_engine_version", "%v", err)
	}

	namespace := opts.Namespace
	if namespace == "" {
		namespace = identifier.NormalizeSlug(name)
	}

	return ResolvedProject{
		Name:                name,
		FolderName:          folder,
		Kind:                kind,
		Namespace:           namespace,
		Version:             version,
		MinEngineVersion:    engine,
		BehaviorDescription: opts.BehaviorDescription,
		ResourceDescription: opts.ResourceDescription,
		PreCreateFiles:      valueOr(opts.PreCreateFiles, true),
	}, nil
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
