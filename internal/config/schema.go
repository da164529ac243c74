package config

// Config is the top-level dexctl configuration.
type Config struct {
	DataDir string        `mapstructure:"data_dir"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Species SpeciesConfig `mapstructure:"species"`
	TCG     TCGConfig     `mapstructure:"tcg"`
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
}

// CatalogConfig locates the static card catalog and names the excludable
// series. The Pocket series is matched by exact name against Set.Series;
// keeping it in config means an upstream rename is a one-line fix.
type CatalogConfig struct {
	Path         string `mapstructure:"path"`
	PocketSeries string `mapstructure:"pocket_series"`
}

// SpeciesConfig controls the cached species list.
type SpeciesConfig struct {
	CacheTTLDays int `mapstructure:"cache_ttl_days"`
	BatchSize    int `mapstructure:"batch_size"`
}

// TCGConfig holds pokemontcg.io API settings for `dexctl sync`.
type TCGConfig struct {
	APIBase   string `mapstructure:"api_base"`
	APIKeyEnv string `mapstructure:"api_key_env"`
	APIKey    string `mapstructure:"-"` // resolved at runtime, never written
}

// PokeAPIConfig holds PokeAPI connection settings.
type PokeAPIConfig struct {
	APIBase string `mapstructure:"api_base"`
}

// EffectiveCatalogPath returns the configured catalog path or the default
// location under the data directory.
func (c *Config) EffectiveCatalogPath() string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return c.DataDir + "/cards.json"
}
