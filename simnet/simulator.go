// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package simnet drives a consensus protocol over a set of simulated nodes.

A Simulator generates random transactions between active nodes each round,
hands them to its protocol and records the outcome. Accepted blocks are
optionally written to an archive and counted in metrics. The run produces a
Report with per round detail and aggregate counts.
*/
package simnet

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/chain"
	"github.com/luxfi/chainsim/metrics"
	"github.com/luxfi/chainsim/store"
)

// Simulator runs one protocol against one chain.
type Simulator struct {
	protocol chainsim.Protocol
	nodes    []*Node
	bc       *chain.Blockchain
	archive  *store.Archive
	metrics  *metrics.Metrics
	log      log.Logger

	rng *rand.Rand
}

// New returns a simulator for the given protocol and nodes. A nil bc starts
// a fresh chain at the default difficulty; arch and m are optional.
func New(
	protocol chainsim.Protocol,
	nodes []*Node,
	bc *chain.Blockchain,
	arch *store.Archive,
	m *metrics.Metrics,
	logger log.Logger,
) *Simulator {
	if bc == nil {
		bc = chain.New(chain.DefaultDifficulty)
	}
	return &Simulator{
		protocol: protocol,
		nodes:    nodes,
		bc:       bc,
		archive:  arch,
		metrics:  m,
		log:      logger,
	}
}

// Chain returns the chain the simulator drives.
func (s *Simulator) Chain() *chain.Blockchain {
	return s.bc
}

// Run executes cfg.Rounds consensus rounds and reports the results.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	active := make([]string, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.Active {
			active = append(active, n.Address)
		}
	}

	s.log.Info("simulation starting",
		log.String("algorithm", s.protocol.Name()),
		log.Int("rounds", cfg.Rounds),
		log.Int("nodes", len(s.nodes)),
		log.Int("active", len(active)),
	)

	rounds := make([]RoundResult, 0, cfg.Rounds)
	totalTxs := 0

	for i := 1; i <= cfg.Rounds; i++ {
		txs := s.generateTransactions(cfg.TxsPerRound)
		res := s.protocol.RunRound(ctx, s.bc, txs, active)

		if res.Success {
			totalTxs += len(txs)
			for _, n := range s.nodes {
				if n.Address == res.Proposer {
					n.BlocksProduced++
				}
			}
			if s.archive != nil && res.Block != nil {
				if err := s.archive.Put(res.Block); err != nil {
					return nil, err
				}
				if s.metrics != nil {
					s.metrics.MarkBlockArchived()
				}
			}
		}
		if s.metrics != nil {
			s.metrics.MarkRound(s.protocol.Name(), res)
			s.metrics.SetChainHeight(uint64(s.bc.Height()))
		}

		s.log.Debug("round finished",
			log.Int("round", i),
			log.Bool("success", res.Success),
			log.Int("height", s.bc.Height()),
			log.Int("pending", s.bc.PendingCount()),
		)

		rounds = append(rounds, RoundResult{
			Round:      i,
			Result:     res,
			Height:     s.bc.Height(),
			PendingTxs: s.bc.PendingCount(),
		})
	}

	successful := 0
	for _, r := range rounds {
		if r.Result.Success {
			successful++
		}
	}

	s.log.Info("simulation complete",
		log.String("algorithm", s.protocol.Name()),
		log.Int("successful", successful),
		log.Int("failed", len(rounds)-successful),
		log.Int("height", s.bc.Height()),
	)

	return &Report{
		Algorithm:         s.protocol.Name(),
		Config:            cfg,
		Rounds:            rounds,
		FinalHeight:       s.bc.Height(),
		SuccessfulRounds:  successful,
		FailedRounds:      len(rounds) - successful,
		TotalTxsProcessed: totalTxs,
	}, nil
}

// generateTransactions mints count random transactions between distinct
// active nodes. Amounts land in [0.1, 10.0) rounded to cents; timestamps
// come from the chain's clock.
func (s *Simulator) generateTransactions(count int) []*chain.Transaction {
	active := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		if n.Active {
			active = append(active, n)
		}
	}
	if len(active) < 2 {
		return nil
	}

	txs := make([]*chain.Transaction, 0, count)
	for len(txs) < count {
		i := s.rng.Intn(len(active))
		j := s.rng.Intn(len(active) - 1)
		if j >= i {
			j++
		}
		amount := math.Round((0.1+s.rng.Float64()*9.9)*100) / 100

		tx, err := chain.NewTransaction(active[i].Address, active[j].Address, amount, s.bc.Clock().UnixNano())
		if err != nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs
}
