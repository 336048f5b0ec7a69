package fragmen

import "context"

// ConfigFile is the name of the consumer configuration file.
const ConfigFile = "fragmen.json"

// SchemaURL is written to the "$schema" field of every saved config.
const SchemaURL = "https://fragmen.dev/schema.json"

// Config represents a consumer project's fragmen.json.
type Config struct {
	Schema  string `json:"$schema"`
	BaseDir string `json:"baseDir"`

	// File extension of installed fragments, e.g. "ts".
	Language string `json:"language"`

	// Recorded for the consumer's benefit; installs copy sources verbatim
	// regardless of its value.
	ModuleSystem string `json:"moduleSystem"`
}

// Config defaults and prompt options.
const (
	DefaultBaseDir      = "lib/utils"
	DefaultLanguage     = "ts"
	DefaultModuleSystem = "esm"
)

// Languages lists the languages offered by init.
var Languages = []string{"ts", "js"}

// ModuleSystems lists the module systems offered by init.
var ModuleSystems = []string{"esm", "cjs"}

// DefaultConfig returns the config used when no fragmen.json exists.
func DefaultConfig() *Config {
	return &Config{
		Schema:       SchemaURL,
		BaseDir:      DefaultBaseDir,
		Language:     DefaultLanguage,
		ModuleSystem: DefaultModuleSystem,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return Errorf(EINVALID, "config base directory required")
	}
	if c.Language == "" {
		return Errorf(EINVALID, "config language required")
	}
	return nil
}

// ConfigService loads and saves the consumer configuration.
type ConfigService interface {
	// LoadConfig reads the config. A missing file yields DefaultConfig.
	LoadConfig(ctx context.Context) (*Config, error)

	// SaveConfig writes the config, replacing any existing file.
	SaveConfig(ctx context.Context, cfg *Config) error
}

// ConfigPrompter interactively collects a config from the user.
type ConfigPrompter interface {
	// Prompt asks for the base directory, language and module system, in
	// that order, starting from defaults.
	// Returns ECANCELED if the user aborts before answering every prompt.
	Prompt(ctx context.Context, defaults *Config) (*Config, error)
}
