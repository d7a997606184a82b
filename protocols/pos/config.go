// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pos

import (
	"errors"
	"fmt"
)

var errNegativeStake = errors.New("stake must not be negative")

// Config contains the tunables of the stake weighted engine.
type Config struct {
	// Stakes maps validator address to staked amount. An empty map is
	// allowed; every round then fails until stakes exist.
	Stakes map[string]float64

	// AgeFactor scales the coin age bonus in the selection weight
	// stake * (1 + AgeFactor * age).
	AgeFactor float64

	// Seed fixes the draw sequence for reproducible rounds. Zero seeds
	// from the wall clock.
	Seed int64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		AgeFactor: 0.1,
	}
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	for addr, stake := range c.Stakes {
		if stake < 0 {
			return fmt.Errorf("%w: validator %s staked %v", errNegativeStake, addr, stake)
		}
	}
	if c.AgeFactor < 0 {
		c.AgeFactor = 0
	}
	return nil
}
