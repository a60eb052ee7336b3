package manifest

import (
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
)

// Defaults for manifests generated without explicit versions.
var (
	DefaultVersion          = Version{1, 0, 0}
	DefaultMinEngineVersion = Version{1, 17, 0}
)

// Options describe a manifest to generate. Nil versions use the defaults.
type Options struct {
	Name             string
	Description      string
	Kind             Kind
	Version          *Version
	MinEngineVersion *Version
	Dependencies     []Dependency
}

// Generate builds a manifest with a fresh header UUID and one module with its
// own fresh UUID. Two calls never share a UUID.
func Generate(opts Options) *Document {
	version := DefaultVersion
	if opts.Version != nil {
		version = *opts.Version
	}
	engine := DefaultMinEngineVersion
	if opts.MinEngineVersion != nil {
		engine = *opts.MinEngineVersion
	}

	description := opts.Description
	if description == "" {
		description = opts.Kind.Label() + " Pack for " + opts.Name
	}

	moduleType := ModuleResources
	if opts.Kind == KindBehavior {
		moduleType = ModuleData
	}

	deps := make([]Dependency, 0, len(opts.Dependencies))
	deps = append(deps, opts.Dependencies...)

	return &Document{
		FormatVersion: FormatVersion,
		Header: Header{
			Name:             opts.Name,
			Description:      description,
			UUID:             identifier.NewUUID(),
			Version:          version,
			MinEngineVersion: engine,
		},
		Modules: []Module{{
			Type:    moduleType,
			UUID:    identifier.NewUUID(),
			Version: version,
		}},
		Dependencies: deps,
	}
}
