package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerbot-engine/internal/util"
	"pokerbot-engine/pkg/poker/holdem"
)

// Config provides configuration for the poker engine
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
	}
	Table struct {
		BuyIn              int   `yaml:"buyIn" envconfig:"buy_in"`
		SmallBlind         int   `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind           int   `yaml:"bigBlind" envconfig:"big_blind"`
		MaxSeats           int   `yaml:"maxSeats" envconfig:"max_seats"`
		TurnTimeoutSeconds int   `yaml:"turnTimeoutSeconds" envconfig:"turn_timeout_seconds"`
		DeckSeed           int64 `yaml:"deckSeed" envconfig:"deck_seed"`
	}
}

var config Config

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

// Load will load the configuration. A missing config file is not an error;
// the defaults still apply and the environment can override them.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("POKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("poker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// TableOptions bridges the configuration to table options
func (c Config) TableOptions() holdem.Options {
	return holdem.Options{
		BuyIn:       c.Table.BuyIn,
		SmallBlind:  c.Table.SmallBlind,
		BigBlind:    c.Table.BigBlind,
		MaxSeats:    c.Table.MaxSeats,
		TurnTimeout: time.Duration(c.Table.TurnTimeoutSeconds) * time.Second,
		DeckSeed:    c.Table.DeckSeed,
	}
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"

	opts := holdem.DefaultOptions()
	c.Table.BuyIn = opts.BuyIn
	c.Table.SmallBlind = opts.SmallBlind
	c.Table.BigBlind = opts.BigBlind
	c.Table.MaxSeats = opts.MaxSeats
	c.Table.TurnTimeoutSeconds = int(opts.TurnTimeout / time.Second)

	return c
}
