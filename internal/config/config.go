// Package config loads runtime settings for the farm CLI from defaults, an
// optional JSON file and command-line flags, in that order of precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path (or sqlite DSN) of the local storage database.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabaseDSN string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "farm.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
