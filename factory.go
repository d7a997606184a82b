// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainsim

import (
	"github.com/luxfi/log"
)

// Factory builds configured protocol instances.
type Factory interface {
	// New returns a protocol wired to the given logger, or an error when
	// the factory's configuration cannot produce a sound instance.
	New(log.Logger) (Protocol, error)
}
