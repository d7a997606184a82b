// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"sync"
	"time"
)

// Clock is a thin wrapper around wall time that can be pinned to a fixed
// instant, so block and transaction timestamps are testable.
type Clock struct {
	lock  sync.RWMutex
	faked bool
	time  time.Time
}

// Set pins the clock to a fixed instant.
func (c *Clock) Set(t time.Time) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.faked = true
	c.time = t
}

// Sync unpins the clock and returns it to wall time.
func (c *Clock) Sync() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.faked = false
}

// Time returns the pinned instant, or wall time when the clock is not
// pinned.
func (c *Clock) Time() time.Time {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.faked {
		return c.time
	}
	return time.Now()
}

// UnixNano returns Time in unix nanoseconds, the unit every timestamp in
// this package uses.
func (c *Clock) UnixNano() int64 {
	return c.Time().UnixNano()
}
