// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pbft

import (
	"errors"
	"fmt"
)

var (
	errNoValidators     = errors.New("pbft requires at least one validator")
	errTooManyByzantine = errors.New("byzantine count exceeds pbft tolerance")
)

// Config contains the tunables of the byzantine fault tolerant engine.
type Config struct {
	// Validators is the fixed roster. Leader rotation follows this order.
	Validators []string

	// Byzantine is how many validators are marked faulty at construction.
	// It must satisfy Byzantine <= (len(Validators)-1)/3.
	Byzantine int

	// Seed fixes which validators are marked byzantine. Zero seeds from
	// the wall clock.
	Seed int64
}

// Validate ensures the configuration is valid. Exceeding the tolerance
// bound is a configuration error, rejected here rather than at round time.
func (c *Config) Validate() error {
	n := len(c.Validators)
	if n == 0 {
		return errNoValidators
	}
	maxF := (n - 1) / 3
	if c.Byzantine < 0 || c.Byzantine > maxF {
		return fmt.Errorf("%w: n=%d tolerates at most f=%d, got %d",
			errTooManyByzantine, n, maxF, c.Byzantine)
	}
	return nil
}
