package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"skycast/internal/debounce"
	"skycast/internal/domain"
	"skycast/internal/weatherapi"
)

// EnvPrefix prefixes every environment override, e.g. SKYCAST_API_KEY
const EnvPrefix = "SKYCAST"

// fallbackKeyEnv is also accepted for the API credential
const fallbackKeyEnv = "WEATHER_API_KEY"

// Config represents the application configuration
type Config struct {
	Version    int              `mapstructure:"version"`
	API        APISettings      `mapstructure:"api"`
	Search     SearchSettings   `mapstructure:"search"`
	Forecast   ForecastSettings `mapstructure:"forecast"`
	Log        LogSettings      `mapstructure:"log"`
	UISettings UISettings       `mapstructure:"ui"`
}

// APISettings configures the weather API client
type APISettings struct {
	BaseURL string        `mapstructure:"base_url"`
	Key     string        `mapstructure:"key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SearchSettings configures the location search
type SearchSettings struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ForecastSettings configures the forecast shown at startup
type ForecastSettings struct {
	DefaultLocation string `mapstructure:"default_location"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `mapstructure:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	EnsureFile() (bool, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
	flags    *pflag.FlagSet
}

// RegisterFlags adds the command line flags that override configuration
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Path to the config file")
	flags.StringP("location", "l", "", "Location shown at startup")
	flags.String("log-file", "", "Log file path")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("api-url", "", "Weather API base URL")
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"location":  "forecast.default_location",
	"log-file":  "log.file",
	"log-level": "log.level",
	"api-url":   "api.base_url",
}

// NewConfigService creates a new config service. flags may be nil.
func NewConfigService(flags *pflag.FlagSet) ConfigService {
	path := ""
	if flags != nil {
		path, _ = flags.GetString("config")
	}
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, flags: flags}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "skycast", "config.toml")
}

// Path returns the config file this service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. A missing file is
// not an error: defaults, environment and flags still apply.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cs.flags != nil {
		for name, key := range flagKeys {
			if f := cs.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.API.Key == "" {
		cfg.API.Key = os.Getenv(fallbackKeyEnv)
	}
	cfg.normalize()

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path. The API key is never written.
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(newFileDocument(config))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// EnsureFile writes the default configuration to the service's path when no
// file exists there yet. Flag and environment overrides are never persisted.
func (cs *configService) EnsureFile() (bool, error) {
	if _, err := os.Stat(cs.filePath); !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := cs.SaveToPath(DefaultConfig(), cs.filePath); err != nil {
		return false, err
	}
	return true, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL: weatherapi.DefaultBaseURL,
			Timeout: weatherapi.DefaultTimeout,
		},
		Search: SearchSettings{
			Debounce: debounce.DefaultWindow,
		},
		Forecast: ForecastSettings{
			DefaultLocation: domain.DefaultLocation,
		},
		Log: LogSettings{
			File:  "skycast.log",
			Level: "info",
		},
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.key", "")
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("search.debounce", d.Search.Debounce)
	v.SetDefault("forecast.default_location", d.Forecast.DefaultLocation)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("ui.show_help", d.UISettings.ShowHelp)
}

// normalize replaces unusable values with defaults
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout <= 0 {
		c.API.Timeout = d.API.Timeout
	}
	if c.Search.Debounce <= 0 {
		c.Search.Debounce = d.Search.Debounce
	}
	c.Forecast.DefaultLocation = strings.TrimSpace(c.Forecast.DefaultLocation)
	if c.Forecast.DefaultLocation == "" {
		c.Forecast.DefaultLocation = d.Forecast.DefaultLocation
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}

// fileDocument is the on-disk TOML layout. Durations are written as strings
// so the file stays readable; the API key is left out.
type fileDocument struct {
	Version int `toml:"version"`
	API     struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"api"`
	Search struct {
		Debounce string `toml:"debounce"`
	} `toml:"search"`
	Forecast struct {
		DefaultLocation string `toml:"default_location"`
	} `toml:"forecast"`
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
	UI struct {
		ShowHelp bool `toml:"show_help"`
	} `toml:"ui"`
}

func newFileDocument(c *Config) fileDocument {
	var doc fileDocument
	doc.Version = c.Version
	doc.API.BaseURL = c.API.BaseURL
	doc.API.Timeout = c.API.Timeout.String()
	doc.Search.Debounce = c.Search.Debounce.String()
	doc.Forecast.DefaultLocation = c.Forecast.DefaultLocation
	doc.Log.File = c.Log.File
	doc.Log.Level = c.Log.Level
	doc.UI.ShowHelp = c.UISettings.ShowHelp
	return doc
}
