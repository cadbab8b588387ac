package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/luca-patrignani/cardcore/domain/cards"
	"github.com/luca-patrignani/cardcore/domain/random"
)

const (
	sourcePCG = "pcg"
	sourceXOF = "xof"
)

// Config holds the dealer command configuration.
type Config struct {
	Seed         string `env:"CARDCORE_SEED"`
	Hands        int    `env:"CARDCORE_HANDS"          envDefault:"4"`
	CardsPerHand int    `env:"CARDCORE_CARDS_PER_HAND" envDefault:"13"`
	Rounds       int    `env:"CARDCORE_ROUNDS"         envDefault:"1"`
	Source       string `env:"CARDCORE_SOURCE"         envDefault:"pcg"`
	Stats        bool   `env:"CARDCORE_STATS"`
	Verbose      bool   `env:"CARDCORE_VERBOSE"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "shuffle seed (random when empty)")
	fs.IntVar(&cfg.Hands, "hands", cfg.Hands, "number of hands to deal")
	fs.IntVar(&cfg.CardsPerHand, "cards", cfg.CardsPerHand, "cards per hand")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "number of deals, each with the next seed")
	fs.StringVar(&cfg.Source, "source", cfg.Source, "random source: pcg or xof")
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "print counts by suit and rank")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the dealer cannot honor.
func (c Config) Validate() error {
	var errs []error
	if c.Hands < 0 {
		errs = append(errs, fmt.Errorf("hands must not be negative, got %d", c.Hands))
	}
	if c.CardsPerHand < 0 {
		errs = append(errs, fmt.Errorf("cards per hand must not be negative, got %d", c.CardsPerHand))
	}
	if c.CardsPerHand > 0 && c.Hands > cards.DeckSize/c.CardsPerHand {
		errs = append(errs, fmt.Errorf("%d hands of %d cards need more than %d cards",
			c.Hands, c.CardsPerHand, cards.DeckSize))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be at least 1, got %d", c.Rounds))
	}
	if c.Source != sourcePCG && c.Source != sourceXOF {
		errs = append(errs, fmt.Errorf("unknown source %q", c.Source))
	}
	if _, err := c.seed(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// seed returns the configured seed, or nil when none was given.
func (c Config) seed() (*uint64, error) {
	if c.Seed == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(c.Seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	return &v, nil
}

// newSource builds the configured random source for one deal.
func (c Config) newSource(seed uint64) random.Source {
	if c.Source == sourceXOF {
		return random.NewXOFSource(random.SeedBytes(seed))
	}
	return random.NewSource(seed)
}
