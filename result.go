// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainsim

import (
	"fmt"

	"github.com/luxfi/chainsim/chain"
)

// Result is the outcome of one consensus round. A fresh value is produced
// per round and never mutated after return.
type Result struct {
	// Success reports whether the round reached consensus and the chain
	// accepted the block.
	Success bool

	// Block is the accepted block. Set only when Success.
	Block *chain.Block

	// Proposer is the node that proposed or mined the block, when the
	// round got far enough to select one.
	Proposer string

	// Rounds counts the communication phases the strategy consumed.
	Rounds int

	// Message is a human readable summary of how the round went.
	Message string
}

// Outcome buckets the result for reports and metric labels.
func (r *Result) Outcome() Outcome {
	if r.Success {
		return Finalized
	}
	return Failed
}

func (r *Result) String() string {
	return fmt.Sprintf("Result(%s, proposer=%s, rounds=%d)", r.Outcome(), r.Proposer, r.Rounds)
}
