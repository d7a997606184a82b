// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simnet

import (
	"context"
	"fmt"

	"github.com/luxfi/log"
	"github.com/luxfi/metric"

	"github.com/luxfi/chainsim"
	"github.com/luxfi/chainsim/metrics"
	"github.com/luxfi/chainsim/protocols/dpos"
	"github.com/luxfi/chainsim/protocols/pbft"
	"github.com/luxfi/chainsim/protocols/pos"
	"github.com/luxfi/chainsim/protocols/pow"
	"github.com/luxfi/chainsim/store"
)

// Default topologies for the packaged scenarios.
const (
	DefaultPoWMiners      = 5
	DefaultPoWDifficulty  = 2
	DefaultPoSValidators  = 5
	DefaultPoSAgeFactor   = 0.15
	DefaultDPoSCandidates = 7
	DefaultDPoSDelegates  = 3
	DefaultPBFTNodes      = 7
	DefaultPBFTByzantine  = 2
)

// RunPoWScenario simulates numMiners nodes racing at the given difficulty.
func RunPoWScenario(ctx context.Context, cfg Config, numMiners, difficulty int, logger log.Logger) (*Report, error) {
	if numMiners <= 0 {
		numMiners = DefaultPoWMiners
	}
	nodes := make([]*Node, 0, numMiners)
	for i := 0; i < numMiners; i++ {
		nodes = append(nodes, NewNode(fmt.Sprintf("miner-%d", i), 50.0, 0))
	}

	engine, err := pow.New(pow.Config{Difficulty: difficulty, Seed: cfg.Seed}, logger)
	if err != nil {
		return nil, err
	}
	return runScenario(ctx, cfg, engine, nodes, logger)
}

// RunPoSScenario simulates numValidators nodes with stakes growing by node
// index, so selection probability varies while coin age keeps low stake
// validators in the game.
func RunPoSScenario(ctx context.Context, cfg Config, numValidators int, logger log.Logger) (*Report, error) {
	if numValidators <= 0 {
		numValidators = DefaultPoSValidators
	}
	nodes := make([]*Node, 0, numValidators)
	stakes := make(map[string]float64, numValidators)
	for i := 0; i < numValidators; i++ {
		n := NewNode(fmt.Sprintf("validator-%d", i), 100.0, 10.0*float64(i+1))
		nodes = append(nodes, n)
		stakes[n.Address] = n.Stake
	}

	engine, err := pos.New(pos.Config{Stakes: stakes, AgeFactor: DefaultPoSAgeFactor, Seed: cfg.Seed}, logger)
	if err != nil {
		return nil, err
	}
	return runScenario(ctx, cfg, engine, nodes, logger)
}

// RunDPoSScenario simulates numCandidates nodes vying for numDelegates
// slots. Lower index candidates receive more votes.
func RunDPoSScenario(ctx context.Context, cfg Config, numCandidates, numDelegates int, logger log.Logger) (*Report, error) {
	if numCandidates <= 0 {
		numCandidates = DefaultDPoSCandidates
	}
	nodes := make([]*Node, 0, numCandidates)
	votes := make(map[string]float64, numCandidates)
	for i := 0; i < numCandidates; i++ {
		n := NewNode(fmt.Sprintf("candidate-%d", i), 100.0, 0)
		nodes = append(nodes, n)
		votes[n.Address] = float64(numCandidates-i) * 100
	}

	engine, err := dpos.New(dpos.Config{Votes: votes, NumDelegates: numDelegates, Seed: cfg.Seed}, logger)
	if err != nil {
		return nil, err
	}
	return runScenario(ctx, cfg, engine, nodes, logger)
}

// RunPBFTScenario simulates a known validator set of numNodes with
// numByzantine silent members.
func RunPBFTScenario(ctx context.Context, cfg Config, numNodes, numByzantine int, logger log.Logger) (*Report, error) {
	if numNodes <= 0 {
		numNodes = DefaultPBFTNodes
	}
	nodes := make([]*Node, 0, numNodes)
	validators := make([]string, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		n := NewNode(fmt.Sprintf("pbft-node-%d", i), 100.0, 0)
		nodes = append(nodes, n)
		validators = append(validators, n.Address)
	}

	engine, err := pbft.New(pbft.Config{Validators: validators, Byzantine: numByzantine, Seed: cfg.Seed}, logger)
	if err != nil {
		return nil, err
	}
	return runScenario(ctx, cfg, engine, nodes, logger)
}

// RunAllScenarios runs the four packaged scenarios at their default
// topologies and returns the reports in showcase order.
func RunAllScenarios(ctx context.Context, cfg Config, logger log.Logger) ([]*Report, error) {
	reports := make([]*Report, 0, 4)

	report, err := RunPoWScenario(ctx, cfg, DefaultPoWMiners, DefaultPoWDifficulty, logger)
	if err != nil {
		return nil, err
	}
	reports = append(reports, report)

	report, err = RunPoSScenario(ctx, cfg, DefaultPoSValidators, logger)
	if err != nil {
		return nil, err
	}
	reports = append(reports, report)

	report, err = RunDPoSScenario(ctx, cfg, DefaultDPoSCandidates, DefaultDPoSDelegates, logger)
	if err != nil {
		return nil, err
	}
	reports = append(reports, report)

	report, err = RunPBFTScenario(ctx, cfg, DefaultPBFTNodes, DefaultPBFTByzantine, logger)
	if err != nil {
		return nil, err
	}
	reports = append(reports, report)

	return reports, nil
}

// runScenario wires the full stack behind every packaged scenario: an in
// memory archive and a fresh metric registry alongside the protocol.
func runScenario(ctx context.Context, cfg Config, protocol chainsim.Protocol, nodes []*Node, logger log.Logger) (*Report, error) {
	arch := store.New(nil)
	m, err := metrics.New(metric.NewRegistry())
	if err != nil {
		return nil, err
	}
	sim := New(protocol, nodes, nil, arch, m, logger)
	return sim.Run(ctx, cfg)
}
