// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GitHubRepo   string `yaml:"github_repo"`
	ParamFileExt string `yaml:"param_file_ext"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "mbu",
			DisplayName:  "Minecraft Bedrock Utils",
			Description:  "Scaffolding for Minecraft Bedrock behavior and resource packs",
			HomeDir:      ".mbu",
			EnvPrefix:    "MBU",
			GitHubRepo:   "MarkusBordihn/minecraft-bedrock-utils",
			ParamFileExt: ".mbu",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mbu").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name used under $HOME and inside
// projects (e.g., ".mbu").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MBU").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// ParamFileExt returns the extension of saved parameter files (e.g., ".mbu").
func ParamFileExt() string { load(); return defaults.ParamFileExt }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("GAME_DIR") → "MBU_GAME_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
