package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kilometers.ai/mcpspaces/internal/application/ports"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. MCP_SPACES_OUTPUT
	EnvPrefix = "MCP_SPACES"

	DefaultOutput = "mcp_spaces.json"

	keyOutput = "output"
	keyFormat = "format"
	keyDebug  = "debug"
	keyConfig = "config"
)

// ViperSettingsRepository resolves settings from bound flags, MCP_SPACES_*
// environment variables, an optional config file and built-in defaults, in
// that order of precedence
type ViperSettingsRepository struct {
	v         *viper.Viper
	validator *SettingsValidator
	fileUsed  string
}

// NewViperSettingsRepository creates a settings repository on top of v.
// A nil v gets a fresh instance.
func NewViperSettingsRepository(v *viper.Viper) *ViperSettingsRepository {
	if v == nil {
		v = viper.New()
	}

	defaults := defaultSettings()
	v.SetDefault(keyOutput, defaults.Output)
	v.SetDefault(keyFormat, string(defaults.Format))
	v.SetDefault(keyDebug, defaults.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &ViperSettingsRepository{
		v:         v,
		validator: NewSettingsValidator(),
	}
}

// BindFlags binds the named flags so that a flag the user changed wins over
// environment and file values
func (r *ViperSettingsRepository) BindFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		flag := flags.Lookup(name)
		if flag == nil {
			return fmt.Errorf("flag %q is not defined", name)
		}
		if err := r.v.BindPFlag(name, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load resolves the settings. A config file named via --config or
// MCP_SPACES_CONFIG must exist; without one, no file is read.
func (r *ViperSettingsRepository) Load() (*Settings, error) {
	if err := r.readConfigFile(); err != nil {
		return nil, err
	}

	settings := &Settings{
		Output: strings.TrimSpace(r.v.GetString(keyOutput)),
		Format: ports.SummaryFormat(strings.ToLower(strings.TrimSpace(r.v.GetString(keyFormat)))),
		Debug:  r.v.GetBool(keyDebug),
	}

	if err := r.validator.Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadDefault returns the built-in defaults
func (r *ViperSettingsRepository) LoadDefault() *Settings {
	return defaultSettings()
}

// ConfigFileUsed returns the config file read by the last Load, if any
func (r *ViperSettingsRepository) ConfigFileUsed() string {
	return r.fileUsed
}

func (r *ViperSettingsRepository) readConfigFile() error {
	path := strings.TrimSpace(r.v.GetString(keyConfig))
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config file %s is a directory", path)
	}

	r.v.SetConfigFile(path)
	if err := r.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	r.fileUsed = r.v.ConfigFileUsed()
	return nil
}

// Settings is the resolved run settings
type Settings = ports.Settings

func defaultSettings() *Settings {
	return &Settings{
		Output: DefaultOutput,
		Format: ports.SummaryFormatText,
		Debug:  false,
	}
}
