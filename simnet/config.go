// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simnet

// Config bounds a simulation run.
type Config struct {
	// Rounds is the number of consensus rounds to drive.
	Rounds int
	// TxsPerRound is the number of transactions generated per round.
	TxsPerRound int
	// Seed makes transaction generation reproducible. Zero derives the
	// seed from the wall clock.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Rounds:      5,
		TxsPerRound: 3,
	}
}

// Validate normalizes the config in place.
func (c *Config) Validate() error {
	if c.Rounds < 0 {
		c.Rounds = 0
	}
	if c.TxsPerRound < 0 {
		c.TxsPerRound = 0
	}
	return nil
}
