// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"errors"
	"math"

	"github.com/luxfi/codec"
	"github.com/luxfi/codec/linearcodec"
)

const codecVersion = 0

var blockCodec codec.Manager

func init() {
	blockCodec = codec.NewManager(math.MaxInt)
	lc := linearcodec.NewDefault()

	err := errors.Join(
		lc.RegisterType(&wireTransaction{}),
		lc.RegisterType(&wireBlock{}),
		blockCodec.RegisterCodec(codecVersion, lc),
	)
	if err != nil {
		panic(err)
	}
}
