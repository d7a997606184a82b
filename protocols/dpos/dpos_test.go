// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dpos

import (
	"context"
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/chainsim/chain"
)

func newTestEngine(t *testing.T, numDelegates int) *Engine {
	require := require.New(t)

	engine, err := New(Config{
		Votes: map[string]float64{
			"alpha": 500,
			"beta":  400,
			"gamma": 300,
			"delta": 200,
			"eps":   100,
		},
		NumDelegates: numDelegates,
		Seed:         42,
	}, log.NoLog{})
	require.NoError(err)
	return engine
}

func TestElectionTakesTopVoted(t *testing.T) {
	require := require.New(t)

	engine := newTestEngine(t, 3)
	require.Len(engine.rotation, 3)

	// The rotation order is shuffled, but membership is exactly the top
	// three by votes.
	require.ElementsMatch([]string{"alpha", "beta", "gamma"}, engine.rotation)
}

func TestElectionTieBreaksByAddress(t *testing.T) {
	require := require.New(t)

	engine, err := New(Config{
		Votes:        map[string]float64{"b": 100, "a": 100, "c": 50},
		NumDelegates: 1,
		Seed:         1,
	}, log.NoLog{})
	require.NoError(err)

	// Equal votes rank in address order, so "a" wins the single seat.
	require.Equal([]string{"a"}, engine.rotation)
}

func TestRoundRobinPermutation(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine := newTestEngine(t, 3)
	k := len(engine.rotation)

	// k consecutive successful rounds visit every delegate exactly once.
	firstCycle := make([]string, 0, k)
	for i := 0; i < k; i++ {
		res := engine.RunRound(context.Background(), bc, nil, nil)
		require.True(res.Success)
		firstCycle = append(firstCycle, res.Proposer)
	}
	require.ElementsMatch(engine.rotation, firstCycle)

	// The next cycle repeats the identical order.
	for i := 0; i < k; i++ {
		res := engine.RunRound(context.Background(), bc, nil, nil)
		require.True(res.Success)
		require.Equal(firstCycle[i], res.Proposer)
	}
	require.True(bc.IsValid())
	require.Equal(1+2*k, bc.Height())
}

func TestSeededRotationIsReproducible(t *testing.T) {
	require := require.New(t)

	require.Equal(newTestEngine(t, 3).rotation, newTestEngine(t, 3).rotation)
}

func TestProducedBlockCounters(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine := newTestEngine(t, 2)

	for i := 0; i < 4; i++ {
		res := engine.RunRound(context.Background(), bc, nil, nil)
		require.True(res.Success)
	}

	// Two delegates, four rounds: two blocks each.
	for _, addr := range engine.rotation {
		require.Equal(2, engine.candidates[addr].BlocksProduced)
	}
	require.Zero(engine.candidates["gamma"].BlocksProduced)
}

func TestRunRoundNoDelegates(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine, err := New(Config{}, log.NoLog{})
	require.NoError(err)

	res := engine.RunRound(context.Background(), bc, nil, nil)
	require.False(res.Success)
	require.Nil(res.Block)
	require.Equal("No active delegates elected.", res.Message)
	require.Equal(1, bc.Height())
}

func TestElectionClampsToCandidateCount(t *testing.T) {
	require := require.New(t)

	engine, err := New(Config{
		Votes:        map[string]float64{"only": 1},
		NumDelegates: 10,
		Seed:         3,
	}, log.NoLog{})
	require.NoError(err)
	require.Equal([]string{"only"}, engine.rotation)
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	factory := &Factory{Config: DefaultConfig()}
	protocol, err := factory.New(log.NoLog{})
	require.NoError(err)
	require.Equal(Name, protocol.Name())
}
