// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pow implements work based consensus. Miners race to find a nonce
// whose block hash clears a leading zero target; the race outcome is
// modeled by one uniform draw so only the winner pays for the search.
package pow

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/chain"
)

// Name identifies the strategy in logs, reports and metric labels.
const Name = "Proof of Work (PoW)"

var _ chainsim.Protocol = (*Engine)(nil)

// Engine runs mining rounds at a fixed difficulty. It carries no state
// across rounds beyond its seeded random source.
type Engine struct {
	cfg Config
	log log.Logger
	rng *rand.Rand
}

// New returns a work based engine with the given configuration.
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg: cfg,
		log: logger,
		rng: rand.New(rand.NewSource(seed)),
	}, nil
}

// Name implements chainsim.Protocol.
func (*Engine) Name() string {
	return Name
}

// RunRound picks a winner among the active nodes, mines the draft block and
// offers it to the chain. ctx bounds the nonce search; a cancelled search
// fails the round and leaves the chain untouched.
func (e *Engine) RunRound(ctx context.Context, bc *chain.Blockchain, txs []*chain.Transaction, activeNodeIDs []string) *chainsim.Result {
	if len(activeNodeIDs) == 0 {
		return &chainsim.Result{
			Rounds:  1,
			Message: "No miners available.",
		}
	}

	miner := activeNodeIDs[e.rng.Intn(len(activeNodeIDs))]

	block := bc.CreateNextBlock(txs, miner)

	start := time.Now()
	if err := block.Mine(ctx, e.cfg.Difficulty); err != nil {
		return &chainsim.Result{
			Proposer: miner,
			Rounds:   1,
			Message:  fmt.Sprintf("Mining aborted: %s.", err),
		}
	}
	elapsed := time.Since(start)

	added := bc.AddBlock(block)
	e.log.Debug("mining round finished",
		log.String("miner", miner),
		log.Uint64("nonce", block.Nonce),
		log.Duration("elapsed", elapsed),
		log.Bool("accepted", added),
	)

	res := &chainsim.Result{
		Success:  added,
		Proposer: miner,
		Rounds:   1,
		Message: fmt.Sprintf(
			"Miner %.8s.. found nonce=%d in %.4fs (difficulty=%d). Block #%d added.",
			miner, block.Nonce, elapsed.Seconds(), e.cfg.Difficulty, block.Index,
		),
	}
	if added {
		res.Block = block
	}
	return res
}
