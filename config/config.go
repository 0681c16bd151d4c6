// Package config loads the ontos configuration with Viper. Precedence
// is defaults, then the user config at ~/.ontos/config.toml, then a
// project-local ontos.toml found by walking up from the working
// directory, then ONTOS_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/PavelShpagin/ontos/errors"
)

// Config is the full ontos configuration tree.
type Config struct {
	Seed   SeedConfig   `mapstructure:"seed"`
	Server ServerConfig `mapstructure:"server"`
	Audit  AuditConfig  `mapstructure:"audit"`
	Log    LogConfig    `mapstructure:"log"`
}

// SeedConfig selects which embedded ontology the binary loads.
type SeedConfig struct {
	Name string `mapstructure:"name"`
}

// ServerConfig configures the graph visualization server.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuditConfig overrides the structural floors a seed declares.
// Zero values defer to the seed's own policy.
type AuditConfig struct {
	MinClasses       int `mapstructure:"min_classes"`
	MinDepth         int `mapstructure:"min_depth"`
	MinLeafInstances int `mapstructure:"min_leaf_instances"`
}

// LogConfig configures log output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// DefaultServerPort is deliberately above the privileged range and easy
// to remember next to the seed ontologies it serves.
const DefaultServerPort = 8770

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the configuration, caching the result for the process.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadWithViper loads configuration from a provided Viper instance.
// Tests use this to stay isolated from the process-global state.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific TOML file.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	return LoadWithViper(v)
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed.name", "animals")
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("log.json", false)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ONTOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// user config first, then project config overrides it
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".ontos", "config.toml")
		if _, err := os.Stat(userPath); err == nil {
			v.SetConfigFile(userPath)
			v.SetConfigType("toml")
			_ = v.MergeInConfig()
		}
	}
	if projectPath := findProjectConfig(); projectPath != "" {
		v.SetConfigFile(projectPath)
		v.SetConfigType("toml")
		_ = v.MergeInConfig()
	}

	viperInstance = v
	return v
}

// findProjectConfig walks up from the working directory looking for an
// ontos.toml. Returns the first hit or empty string.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "ontos.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
