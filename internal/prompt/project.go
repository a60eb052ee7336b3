package prompt

import (
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/identifier"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
)

// Project asks for the options of a new project. seed.Type, when set, skips
// the project type question.
func Project(a Asker, seed options.Project) (options.Project, error) {
	f := &form{a: a}
	out := seed

	if out.Type == "" {
		kinds := make([]string, len(options.ProjectKinds))
		for i, k := range options.ProjectKinds {
			kinds[i] = string(k)
		}
		out.Type = f.choose("Select the project type", kinds, string(options.KindAddOn))
	}

	name := seed.Name
	if name == "" {
		name = options.DefaultProjectName
	}
	out.Name = f.input("Project Name", name)

	folder := seed.FolderName
	if folder == "" {
		folder = identifier.NormalizePathName(out.Name)
	}
	out.FolderName = f.input("Folder Name", folder)

	namespace := seed.Namespace
	if namespace == "" {
		namespace = identifier.NormalizeSlug(out.Name)
	}
	out.Namespace = f.input("Namespace", namespace)
	out.Version = f.input("Version", orDefault(seed.Version, "1.0.0"))
	out.MinEngineVersion = f.input("Min Engine Version", orDefault(seed.MinEngineVersion, "1.17.0"))

	kind, _ := options.ParseProjectKind(out.Type)
	if kind.HasBehaviorPack() {
		out.BehaviorDescription = f.input("Behavior Pack Description", orDefault(seed.BehaviorDescription, "Behavior Pack for "+out.Name))
	}
	if kind.HasResourcePack() {
		out.ResourceDescription = f.input("Resource Pack Description", orDefault(seed.ResourceDescription, "Resource Pack for "+out.Name))
	}
	out.PreCreateFiles = options.Ptr(f.confirm("Pre-create files and folders", true))

	return out, f.err
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
