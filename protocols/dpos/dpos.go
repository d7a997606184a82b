// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dpos implements delegated consensus. Token holders' votes elect a
// small set of delegates who take round robin turns producing blocks; the
// rotation order is fixed by one shuffle when the engine is built.
package dpos

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/chain"
)

// Name identifies the strategy in logs, reports and metric labels.
const Name = "Delegated Proof of Stake (DPoS)"

var _ chainsim.Protocol = (*Engine)(nil)

// Delegate is one block producer candidate.
type Delegate struct {
	Address        string
	Votes          float64
	BlocksProduced int
}

// Engine rotates block production among the elected delegates. The cursor
// advances after every round whether or not the block landed.
type Engine struct {
	cfg Config
	log log.Logger

	candidates map[string]*Delegate

	// rotation is the elected delegate order. Election ranks candidates
	// by descending votes (ties by address), takes the top NumDelegates
	// and shuffles them once; the order then never changes.
	rotation   []string
	roundIndex int
}

// New returns a delegated engine with the given configuration. Election
// happens here, once.
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	e := &Engine{
		cfg:        cfg,
		log:        logger,
		candidates: make(map[string]*Delegate, len(cfg.Votes)),
	}

	ranked := make([]*Delegate, 0, len(cfg.Votes))
	for addr, votes := range cfg.Votes {
		d := &Delegate{Address: addr, Votes: votes}
		e.candidates[addr] = d
		ranked = append(ranked, d)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Votes != ranked[j].Votes {
			return ranked[i].Votes > ranked[j].Votes
		}
		return ranked[i].Address < ranked[j].Address
	})

	elected := min(cfg.NumDelegates, len(ranked))
	e.rotation = make([]string, 0, elected)
	for _, d := range ranked[:elected] {
		e.rotation = append(e.rotation, d.Address)
	}
	rng.Shuffle(len(e.rotation), func(i, j int) {
		e.rotation[i], e.rotation[j] = e.rotation[j], e.rotation[i]
	})

	logger.Debug("delegates elected",
		log.Int("candidates", len(cfg.Votes)),
		log.Int("elected", elected),
	)
	return e, nil
}

// Name implements chainsim.Protocol.
func (*Engine) Name() string {
	return Name
}

// RunRound lets the delegate at the rotation cursor produce the next block.
func (e *Engine) RunRound(ctx context.Context, bc *chain.Blockchain, txs []*chain.Transaction, activeNodeIDs []string) *chainsim.Result {
	if len(e.rotation) == 0 {
		return &chainsim.Result{
			Rounds:  1,
			Message: "No active delegates elected.",
		}
	}

	delegate := e.rotation[e.roundIndex%len(e.rotation)]

	block := bc.CreateNextBlock(txs, delegate)
	block.Seal()

	added := bc.AddBlock(block)
	if added {
		e.candidates[delegate].BlocksProduced++
	}

	// The cursor advances regardless of the round's outcome.
	e.roundIndex++
	slot := (e.roundIndex - 1) % len(e.rotation)

	e.log.Debug("delegate round finished",
		log.String("delegate", delegate),
		log.Int("slot", slot),
		log.Bool("accepted", added),
	)

	res := &chainsim.Result{
		Success:  added,
		Proposer: delegate,
		Rounds:   1,
		Message: fmt.Sprintf(
			"Delegate %.8s.. (votes=%.1f) produced Block #%d [round-robin slot %d].",
			delegate, e.candidates[delegate].Votes, block.Index, slot,
		),
	}
	if added {
		res.Block = block
	}
	return res
}
