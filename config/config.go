// Package config resolves runtime settings from defaults, environment and command-line flags.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lixenwraith/apple-ten/constants"
)

// Config holds the game's runtime settings
type Config struct {
	TimeLimit  int    // Session length in seconds
	RankingDir string // Directory holding the ranking file
	LightMode  bool
	Music      bool
	Seed       int64 // Board seed, 0 for time-based
	Debug      bool  // Write logs to logs/apple-ten.log
	ColorMode  string
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TimeLimit:  constants.DefaultTimeLimit,
		RankingDir: defaultRankingDir(),
		LightMode:  true,
		Music:      true,
		ColorMode:  "auto",
	}
}

// defaultRankingDir prefers the user config directory, falling back to the working directory
func defaultRankingDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "apple-ten")
	}
	return "."
}

// LoadFromEnv applies APPLE_TEN_* environment overrides on top of defaults
func LoadFromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("APPLE_TEN_TIME_LIMIT"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.TimeLimit = val
		}
	}
	if v := os.Getenv("APPLE_TEN_RANKING_DIR"); v != "" {
		cfg.RankingDir = v
	}
	if v := os.Getenv("APPLE_TEN_LIGHT_MODE"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.LightMode = val
		}
	}
	if v := os.Getenv("APPLE_TEN_MUSIC"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.Music = val
		}
	}
	if v := os.Getenv("APPLE_TEN_SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	cfg.Validate()
	return cfg
}

// RegisterFlags binds command-line flags to the config; values already set act as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.TimeLimit, "time", c.TimeLimit, "Session length in seconds")
	fs.StringVar(&c.RankingDir, "ranking-dir", c.RankingDir, "Directory for the ranking file")
	fs.BoolVar(&c.LightMode, "light", c.LightMode, "Start in light mode")
	fs.BoolVar(&c.Music, "music", c.Music, "Play background music")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Board seed (0 = random)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging to file")
	fs.StringVar(&c.ColorMode, "color", c.ColorMode, "Color mode: auto, truecolor, 256")
}

// Validate clamps out-of-range values
func (c *Config) Validate() {
	if c.TimeLimit < 1 {
		c.TimeLimit = constants.DefaultTimeLimit
	}
	switch c.ColorMode {
	case "auto", "truecolor", "256":
	default:
		c.ColorMode = "auto"
	}
}
