// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pos implements stake weighted consensus. One validator is drawn
// per round with probability proportional to stake scaled by a coin age
// bonus; producing a block resets the producer's age while everyone else's
// grows.
package pos

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/luxfi/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/chain"
)

// Name identifies the strategy in logs, reports and metric labels.
const Name = "Proof of Stake (PoS)"

var _ chainsim.Protocol = (*Engine)(nil)

// StakeInfo tracks stake and coin age for one validator.
type StakeInfo struct {
	Address string
	Stake   float64

	// Age counts finalized rounds since this validator last produced a
	// block.
	Age int
}

// Engine selects proposers with probability proportional to
// stake * (1 + ageFactor * age). Ages advance only on rounds that finalize
// a block.
type Engine struct {
	cfg Config
	log log.Logger
	rng *rand.Rand

	// roster holds validator state in address order so that seeded draws
	// are reproducible.
	roster []*StakeInfo
	byAddr map[string]*StakeInfo
}

// New returns a stake weighted engine with the given configuration.
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:    cfg,
		log:    logger,
		rng:    rand.New(rand.NewSource(uint64(seed))),
		byAddr: make(map[string]*StakeInfo, len(cfg.Stakes)),
	}
	addrs := make([]string, 0, len(cfg.Stakes))
	for addr := range cfg.Stakes {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	for _, addr := range addrs {
		info := &StakeInfo{Address: addr, Stake: cfg.Stakes[addr]}
		e.roster = append(e.roster, info)
		e.byAddr[addr] = info
	}
	return e, nil
}

// Name implements chainsim.Protocol.
func (*Engine) Name() string {
	return Name
}

// selectValidator draws one validator with probability proportional to its
// effective stake. A zero total weight exhausts the sampler immediately, in
// which case the draw falls back to uniform.
func (e *Engine) selectValidator() *StakeInfo {
	weights := make([]float64, len(e.roster))
	for i, info := range e.roster {
		weights[i] = info.Stake * (1 + e.cfg.AgeFactor*float64(info.Age))
	}
	if idx, ok := sampleuv.NewWeighted(weights, e.rng).Take(); ok {
		return e.roster[idx]
	}
	return e.roster[e.rng.Intn(len(e.roster))]
}

// RunRound draws a proposer, seals the draft block and offers it to the
// chain. Coin ages advance only when the block is accepted.
func (e *Engine) RunRound(ctx context.Context, bc *chain.Blockchain, txs []*chain.Transaction, activeNodeIDs []string) *chainsim.Result {
	if len(e.roster) == 0 {
		return &chainsim.Result{
			Rounds:  1,
			Message: "No validators registered.",
		}
	}

	info := e.selectValidator()

	block := bc.CreateNextBlock(txs, info.Address)
	block.Seal()

	added := bc.AddBlock(block)
	if added {
		for _, v := range e.roster {
			if v == info {
				v.Age = 0
			} else {
				v.Age++
			}
		}
	}

	e.log.Debug("stake round finished",
		log.String("validator", info.Address),
		log.Int("age", info.Age),
		log.Bool("accepted", added),
	)

	res := &chainsim.Result{
		Success:  added,
		Proposer: info.Address,
		Rounds:   1,
		Message: fmt.Sprintf(
			"Validator %.8s.. selected (stake=%.1f, age=%d). Block #%d added.",
			info.Address, info.Stake, info.Age, block.Index,
		),
	}
	if added {
		res.Block = block
	}
	return res
}
