// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pbft implements practical byzantine fault tolerance over a fixed
// validator roster. A round walks three synchronous phases (pre-prepare,
// prepare, commit) with quorum 2f+1; byzantine validators fault only by
// withholding their messages, never by equivocating.
package pbft

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/luxfi/log"
	"github.com/luxfi/math/set"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/chain"
)

// Name identifies the strategy in logs, reports and metric labels.
const Name = "Practical Byzantine Fault Tolerance (PBFT)"

// phases per round: pre-prepare, prepare, commit.
const phases = 3

var _ chainsim.Protocol = (*Engine)(nil)

// validator is the per node state tracked during a round.
type validator struct {
	address   string
	byzantine bool

	prepares  set.Set[string]
	commits   set.Set[string]
	prepared  bool
	committed bool
}

// Engine drives the three phase agreement. The byzantine subset is drawn
// once at construction and stays fixed; the view counter rotates the leader
// after every round, successful or not.
type Engine struct {
	cfg    Config
	log    log.Logger
	quorum int

	// roster keeps per validator state in the configured order, which is
	// also the leader rotation order.
	roster []*validator
	view   int
}

// New returns a byzantine fault tolerant engine, or a configuration error
// when the byzantine count exceeds floor((n-1)/3).
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	byzantine := set.NewSet[string](cfg.Byzantine)
	for _, i := range rng.Perm(len(cfg.Validators))[:cfg.Byzantine] {
		byzantine.Add(cfg.Validators[i])
	}

	e := &Engine{
		cfg:    cfg,
		log:    logger,
		quorum: 2*cfg.Byzantine + 1,
		roster: make([]*validator, 0, len(cfg.Validators)),
	}
	for _, addr := range cfg.Validators {
		e.roster = append(e.roster, &validator{
			address:   addr,
			byzantine: byzantine.Contains(addr),
		})
	}
	return e, nil
}

// Name implements chainsim.Protocol.
func (*Engine) Name() string {
	return Name
}

// Quorum returns the message count, 2f+1, a phase needs to advance.
func (e *Engine) Quorum() int {
	return e.quorum
}

// resetRound clears the per validator tallies left by the previous round.
func (e *Engine) resetRound() {
	for _, v := range e.roster {
		v.prepares = make(set.Set[string])
		v.commits = make(set.Set[string])
		v.prepared = false
		v.committed = false
	}
}

// phasePrePrepare has the leader announce the sealed draft.
func (e *Engine) phasePrePrepare(leader, blockHash string) []message {
	return []message{{
		typ:       msgPrePrepare,
		sender:    leader,
		blockHash: blockHash,
		view:      e.view,
	}}
}

// phasePrepare collects a PREPARE from every honest validator. Byzantine
// validators withhold.
func (e *Engine) phasePrepare(blockHash string) []message {
	msgs := make([]message, 0, len(e.roster))
	for _, v := range e.roster {
		if v.byzantine {
			continue
		}
		msgs = append(msgs, message{
			typ:       msgPrepare,
			sender:    v.address,
			blockHash: blockHash,
			view:      e.view,
		})
	}
	return msgs
}

// phaseCommit collects a COMMIT from every honest validator whose received
// PREPAREs reached quorum; those validators are marked prepared.
func (e *Engine) phaseCommit(blockHash string) []message {
	var msgs []message
	for _, v := range e.roster {
		if v.byzantine {
			continue
		}
		if v.prepares.Len() >= e.quorum {
			v.prepared = true
			msgs = append(msgs, message{
				typ:       msgCommit,
				sender:    v.address,
				blockHash: blockHash,
				view:      e.view,
			})
		}
	}
	return msgs
}

// broadcast delivers every message to every validator's received set,
// byzantine ones included; they receive, they just never answer.
func (e *Engine) broadcast(msgs []message) {
	for _, msg := range msgs {
		for _, v := range e.roster {
			switch msg.typ {
			case msgPrepare:
				v.prepares.Add(msg.sender)
			case msgCommit:
				v.commits.Add(msg.sender)
			}
		}
	}
}

// RunRound executes the three phases against the current view's leader and
// offers the block to the chain iff a quorum of honest validators
// committed. The view advances every round, rotating the leader.
func (e *Engine) RunRound(ctx context.Context, bc *chain.Blockchain, txs []*chain.Transaction, activeNodeIDs []string) *chainsim.Result {
	e.resetRound()

	n := len(e.roster)
	leader := e.roster[e.view%n].address

	block := bc.CreateNextBlock(txs, leader)
	block.Seal()

	prePrepares := e.phasePrePrepare(leader, block.Hash)

	prepares := e.phasePrepare(block.Hash)
	e.broadcast(prepares)

	commits := e.phaseCommit(block.Hash)
	e.broadcast(commits)

	committed := 0
	for _, v := range e.roster {
		if v.byzantine {
			continue
		}
		if v.commits.Len() >= e.quorum {
			v.committed = true
			committed++
		}
	}

	e.log.Debug("pbft phases complete",
		log.String("leader", leader),
		log.Int("view", e.view),
		log.Int("prePrepares", len(prePrepares)),
		log.Int("prepares", len(prepares)),
		log.Int("commits", len(commits)),
		log.Int("committed", committed),
	)

	// The leader rotates every round, reached or not.
	e.view++

	if committed < e.quorum {
		return &chainsim.Result{
			Proposer: leader,
			Rounds:   phases,
			Message: fmt.Sprintf(
				"PBFT failed to reach consensus. Only %d/%d nodes committed (byzantine=%d/%d).",
				committed, e.quorum, e.cfg.Byzantine, n,
			),
		}
	}

	added := bc.AddBlock(block)
	res := &chainsim.Result{
		Success:  added,
		Proposer: leader,
		Rounds:   phases,
		Message: fmt.Sprintf(
			"PBFT consensus reached in %d phases. Leader=%.8s.., prepares=%d, commits=%d, byzantine=%d/%d. Block #%d finalized.",
			phases, leader, len(prepares), len(commits), e.cfg.Byzantine, n, block.Index,
		),
	}
	if added {
		res.Block = block
	}
	return res
}
