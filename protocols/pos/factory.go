// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pos

import (
	"github.com/luxfi/log"

	"github.com/luxfi/chainsim"
)

var _ chainsim.Factory = (*Factory)(nil)

// Factory builds stake weighted engines from a stored configuration.
type Factory struct {
	Config Config
}

// New implements chainsim.Factory.
func (f *Factory) New(logger log.Logger) (chainsim.Protocol, error) {
	return New(f.Config, logger)
}
