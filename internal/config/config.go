package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dexctl", "config.yml")
}

// Load reads the config from disk (or env). A missing file is fine; every
// setting has a usable default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("catalog.pocket_series", "Pokémon TCG Pocket")
	v.SetDefault("species.cache_ttl_days", 30)
	v.SetDefault("species.batch_size", 50)
	v.SetDefault("tcg.api_base", "https://api.pokemontcg.io/v2")
	v.SetDefault("tcg.api_key_env", "POKEMONTCG_API_KEY")
	v.SetDefault("pokeapi.api_base", "https://pokeapi.co/api/v2")

	v.SetEnvPrefix("DEXCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("DEXCTL_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Resolve API key from env (never stored in file).
	keyEnv := cfg.TCG.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "POKEMONTCG_API_KEY"
	}
	cfg.TCG.APIKey = os.Getenv(keyEnv)

	cfg.DataDir = ExpandHome(cfg.DataDir)
	cfg.Catalog.Path = ExpandHome(cfg.Catalog.Path)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "dexctl")
}
