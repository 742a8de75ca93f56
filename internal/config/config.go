package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ballerina-integrator/baltemplates/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyToolBinary    = "tool.binary"
	KeyToolNamespace = "tool.namespace"
	KeyToolEnvFile   = "tool.env_file"
	KeyLogLevel      = "log.level"
	KeyOpenCommand   = "open.command"
	KeyWorkspaceDir  = "workspace.dir"
	KeyTemplatesFile = "templates.file"
	KeyLastTemplate  = "last_template"
)

// Settings is the resolved view of the configuration used by the commands.
type Settings struct {
	ToolBinary    string
	ToolNamespace string
	ToolEnvFile   string
	LogLevel      string
	OpenCommand   string
	WorkspaceDir  string
	TemplatesFile string
	LastTemplate  string
}

// Dir returns the config directory. BALTEMPLATES_HOME overrides ~/.baltemplates/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.baltemplates/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// LogPath returns the path of the debug log written by interactive sessions.
func LogPath() string {
	return filepath.Join(Dir(), "logs", "baltemplates.log")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Keys map to env vars with dots replaced, e.g. tool.binary → BALTEMPLATES_TOOL_BINARY.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
// Only the file's own contents and the new key are written; environment
// overrides stay out of the file. Concurrent writers are not coordinated;
// the last write wins.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Keys returns every key known to the config, including the built-in ones
// that have no value yet, sorted.
func Keys() []string {
	seen := map[string]bool{}
	for _, k := range []string{
		KeyToolBinary, KeyToolNamespace, KeyToolEnvFile, KeyLogLevel,
		KeyOpenCommand, KeyWorkspaceDir, KeyTemplatesFile, KeyLastTemplate,
	} {
		seen[k] = true
	}
	for _, k := range viper.AllKeys() {
		seen[k] = true
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Current resolves Settings from Viper, filling built-in defaults for unset keys.
func Current() Settings {
	return Settings{
		ToolBinary:    valueOr(KeyToolBinary, branding.ToolBinary()),
		ToolNamespace: valueOr(KeyToolNamespace, branding.TemplateNamespace()),
		ToolEnvFile:   Get(KeyToolEnvFile),
		LogLevel:      valueOr(KeyLogLevel, "INFO"),
		OpenCommand:   Get(KeyOpenCommand),
		WorkspaceDir:  Get(KeyWorkspaceDir),
		TemplatesFile: Get(KeyTemplatesFile),
		LastTemplate:  Get(KeyLastTemplate),
	}
}

// LastTemplate returns the id of the most recently chosen template.
func LastTemplate() string {
	return Get(KeyLastTemplate)
}

// RememberTemplate persists id as the most recently chosen template.
func RememberTemplate(id string) error {
	return Set(KeyLastTemplate, id)
}

func valueOr(key, fallback string) string {
	if v := strings.TrimSpace(Get(key)); v != "" {
		return v
	}
	return fallback
}
