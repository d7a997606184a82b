// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dpos

// Config contains the tunables of the delegated engine.
type Config struct {
	// Votes maps candidate address to the total votes it received. An
	// empty map elects nobody; every round then fails.
	Votes map[string]float64

	// NumDelegates is how many of the top voted candidates are elected
	// as active block producers.
	NumDelegates int

	// Seed fixes the rotation shuffle for reproducible orders. Zero
	// seeds from the wall clock.
	Seed int64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		NumDelegates: 3,
	}
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if c.NumDelegates < 0 {
		c.NumDelegates = 0
	}
	return nil
}
