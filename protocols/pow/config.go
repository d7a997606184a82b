// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pow

// Config contains the tunables of the work based engine.
type Config struct {
	// Difficulty is the number of leading zero hex digits a block hash
	// must carry before the chain will see it.
	Difficulty int

	// Seed fixes the winner selection sequence for reproducible rounds.
	// Zero seeds from the wall clock.
	Seed int64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Difficulty: 3,
	}
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if c.Difficulty < 0 {
		c.Difficulty = 0
	}
	return nil
}
