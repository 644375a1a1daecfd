/*
Package config manages TOML config for choseong.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/choseong/internal/utils"
	"github.com/bastiangx/choseong/pkg/lookup"
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

// Config holds the entire config structure
type Config struct {
	Dataset DatasetConfig `toml:"dataset"`
	Lookup  LookupConfig  `toml:"lookup"`
	UI      UIConfig      `toml:"ui"`
	CLI     CliConfig     `toml:"cli"`
}

// DatasetConfig points at the dataset file.
// An empty path selects the bundled sample; an empty format is detected from the extension.
type DatasetConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// LookupConfig holds query engine options.
type LookupConfig struct {
	SuggestionLimit    int    `toml:"suggestion_limit"`
	SuppressedCategory string `toml:"suppressed_category"`
	Locale             string `toml:"locale"`
}

// UIConfig holds the messages and headings shown by the front-ends.
type UIConfig struct {
	Placeholder  string `toml:"placeholder"`
	NoMatch      string `toml:"no_match"`
	ExactTitle   string `toml:"exact_title"`
	SuggestTitle string `toml:"suggest_title"`
}

// CliConfig holds terminal options.
type CliConfig struct {
	AltScreen bool `toml:"alt_screen"`
	CharLimit int  `toml:"char_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/choseong
// 2. ~/Library/Application Support/choseong (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "choseong")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "choseong")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/choseong/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:   "",
			Format: "",
		},
		Lookup: LookupConfig{
			SuggestionLimit:    lookup.DefaultSuggestionLimit,
			SuppressedCategory: lookup.DefaultSuppressedCategory,
			Locale:             "ko",
		},
		UI: UIConfig{
			Placeholder:  lookup.DefaultPlaceholder,
			NoMatch:      lookup.DefaultNoMatch,
			ExactTitle:   "정확히 일치",
			SuggestTitle: "시작 초성 일치 (제안)",
		},
		CLI: CliConfig{
			AltScreen: true,
			CharLimit: 64,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := decodeFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every value that still has the right type when the file as a whole does not decode
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	secs, err := readSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if t, ok := secs.table("dataset"); ok {
		setField(t, "path", &config.Dataset.Path)
		setField(t, "format", &config.Dataset.Format)
	}
	if t, ok := secs.table("lookup"); ok {
		setInt(t, "suggestion_limit", &config.Lookup.SuggestionLimit)
		setField(t, "suppressed_category", &config.Lookup.SuppressedCategory)
		setField(t, "locale", &config.Lookup.Locale)
	}
	if t, ok := secs.table("ui"); ok {
		setField(t, "placeholder", &config.UI.Placeholder)
		setField(t, "no_match", &config.UI.NoMatch)
		setField(t, "exact_title", &config.UI.ExactTitle)
		setField(t, "suggest_title", &config.UI.SuggestTitle)
	}
	if t, ok := secs.table("cli"); ok {
		setField(t, "alt_screen", &config.CLI.AltScreen)
		setInt(t, "char_limit", &config.CLI.CharLimit)
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// LookupOptions converts the config into query engine options.
func (c *Config) LookupOptions() lookup.Options {
	return lookup.Options{
		SuggestionLimit:    c.Lookup.SuggestionLimit,
		SuppressedCategory: c.Lookup.SuppressedCategory,
		Placeholder:        c.UI.Placeholder,
		NoMatch:            c.UI.NoMatch,
	}
}

// LocaleTag parses the configured collation locale. An empty locale means Korean.
func (c *Config) LocaleTag() (language.Tag, error) {
	if c.Lookup.Locale == "" {
		return language.Korean, nil
	}
	tag, err := language.Parse(c.Lookup.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Lookup.Locale, err)
	}
	return tag, nil
}
