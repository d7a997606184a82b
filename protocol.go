// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainsim defines the contracts that make the consensus strategies
// in this module interchangeable: the Protocol interface every strategy
// implements, the Result a round produces, and the Factory that builds
// configured instances.
package chainsim

import (
	"context"

	"github.com/luxfi/chainsim/chain"
)

// Protocol is one consensus strategy driving a shared chain.
//
// Implementations must be side effect consistent: either a round succeeds
// and the chain gains exactly one block through its admission gate, or the
// round fails and the chain is exactly as it was. A round runs to
// completion as a single non reentrant operation; nothing may run two
// rounds concurrently against one chain.
type Protocol interface {
	// Name identifies the strategy in logs, reports and metric labels.
	Name() string

	// RunRound executes a single consensus round: select a proposer among
	// the active nodes, assemble and finalize the next block carrying txs,
	// and offer it to the chain. ctx bounds the round's unbounded work
	// (the mining search); a cancelled round reports failure. The returned
	// result is never nil and is fresh each round.
	RunRound(ctx context.Context, bc *chain.Blockchain, txs []*chain.Transaction, activeNodeIDs []string) *Result
}
