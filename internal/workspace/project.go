package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/branding"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/config"
	"github.com/MarkusBordihn/minecraft-bedrock-utils/internal/options"
	"go.yaml.in/yaml/v3"
)

const projectFile = "project.yaml"

// ProjectConfig represents the .mbu/project.yaml structure. Every field is
// optional and overrides the user config for this project.
type ProjectConfig struct {
	Namespace        string              `yaml:"namespace,omitempty"`
	FormatVersion    FormatVersionConfig `yaml:"format_version,omitempty"`
	MinEngineVersion string              `yaml:"min_engine_version,omitempty"`
}

// FormatVersionConfig pins the format versions new documents use.
type FormatVersionConfig struct {
	Stable       string `yaml:"stable,omitempty"`
	Experimental string `yaml:"experimental,omitempty"`
}

// ProjectConfigPath returns the full path to .mbu/project.yaml for a project.
func ProjectConfigPath(projectPath string) string {
	return filepath.Join(projectPath, "."+branding.CLIName(), projectFile)
}

// LoadProject reads .mbu/project.yaml. A missing file yields an empty config.
func LoadProject(projectPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(ProjectConfigPath(projectPath))
	if errors.Is(err, os.ErrNotExist) {
		return &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}
	return &cfg, nil
}

// SaveProject writes the project config, creating .mbu/ as needed.
func SaveProject(projectPath string, cfg *ProjectConfig) error {
	path := ProjectConfigPath(projectPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating project config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}
	return nil
}

// ItemDefaults merges project config, user config and built-in item defaults.
func (c *Context) ItemDefaults() options.Defaults {
	return c.defaults(options.ItemDefaults())
}

// RecipeDefaults merges project config, user config and built-in recipe
// defaults.
func (c *Context) RecipeDefaults() options.Defaults {
	return c.defaults(options.RecipeDefaults())
}

// MinEngineVersion returns the min engine version new manifests declare.
func (c *Context) MinEngineVersion() string {
	return first(c.Config.MinEngineVersion, config.Get(config.KeyMinEngineVersion))
}

func (c *Context) defaults(builtin options.Defaults) options.Defaults {
	return options.Defaults{
		Namespace: first(c.Config.Namespace, config.Get(config.KeyNamespace), builtin.Namespace),
		StableVersion: first(c.Config.FormatVersion.Stable,
			config.Get(config.KeyStableVersion), builtin.StableVersion),
		ExperimentalVersion: first(c.Config.FormatVersion.Experimental,
			config.Get(config.KeyExperimentalVersion), builtin.ExperimentalVersion),
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
