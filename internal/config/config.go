package config

import (
	"errors"
	"holdem-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Hold'em server
type Config struct {
	loaded bool

	Addr string `yaml:"addr" envconfig:"addr"`

	// Seed pins every shuffle and bot choice when non-zero
	Seed int64 `yaml:"seed" envconfig:"seed"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		StartingStack    int    `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind       int    `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind         int    `yaml:"bigBlind" envconfig:"big_blind"`
		DealerPolicy     string `yaml:"dealerPolicy" envconfig:"dealer_policy"`
		MaxBotIterations int    `yaml:"maxBotIterations" envconfig:"max_bot_iterations"`
	} `yaml:"game"`

	Equity struct {
		DisplaySimulations int `yaml:"displaySimulations" envconfig:"display_simulations"`
		BotSimulations     int `yaml:"botSimulations" envconfig:"bot_simulations"`
	} `yaml:"equity"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Game.StartingStack = 1000
	cfg.Game.SmallBlind = 10
	cfg.Game.BigBlind = 20
	cfg.Game.DealerPolicy = "lowest-seat"
	cfg.Game.MaxBotIterations = 100
	cfg.Equity.DisplaySimulations = 1000
	cfg.Equity.BotSimulations = 3000

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
