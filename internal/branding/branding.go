// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed. Hard defaults cover
// a missing or empty file.
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
	CLIName           string `yaml:"cli_name"`
	DisplayName       string `yaml:"display_name"`
	Description       string `yaml:"description"`
	HomeDir           string `yaml:"home_dir"`
	EnvPrefix         string `yaml:"env_prefix"`
	ToolBinary        string `yaml:"tool_binary"`
	TemplateNamespace string `yaml:"template_namespace"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:           "baltemplates",
			DisplayName:       "Ballerina Project Templates",
			Description:       "Create Ballerina projects and modules from templates",
			HomeDir:           ".baltemplates",
			EnvPrefix:         "BALTEMPLATES",
			ToolBinary:        "ballerina",
			TemplateNamespace: "wso2",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "baltemplates").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".baltemplates").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BALTEMPLATES").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ToolBinary returns the default name of the external project CLI.
func ToolBinary() string { load(); return defaults.ToolBinary }

// TemplateNamespace returns the default organization that publishes module templates.
func TemplateNamespace() string { load(); return defaults.TemplateNamespace }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "BALTEMPLATES_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
