// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pbft

import (
	"context"
	"fmt"
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/chainsim/chain"
)

func testValidators(n int) []string {
	addrs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		addrs = append(addrs, fmt.Sprintf("validator-%d", i))
	}
	return addrs
}

func TestToleranceBound(t *testing.T) {
	require := require.New(t)

	// floor((7-1)/3) = 2, so f=3 is rejected at construction.
	_, err := New(Config{Validators: testValidators(7), Byzantine: 3}, log.NoLog{})
	require.ErrorIs(err, errTooManyByzantine)

	// f=2 is inside the bound, and quorum is 2f+1 = 5.
	engine, err := New(Config{Validators: testValidators(7), Byzantine: 2, Seed: 11}, log.NoLog{})
	require.NoError(err)
	require.Equal(5, engine.Quorum())

	_, err = New(Config{}, log.NoLog{})
	require.ErrorIs(err, errNoValidators)

	_, err = New(Config{Validators: testValidators(4), Byzantine: -1}, log.NoLog{})
	require.ErrorIs(err, errTooManyByzantine)
}

func TestLivenessUnderBound(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine, err := New(Config{Validators: testValidators(7), Byzantine: 2, Seed: 11}, log.NoLog{})
	require.NoError(err)

	// With abstention the only fault, the 5 honest validators always hit
	// quorum 5: every round must finalize.
	for i := 0; i < 10; i++ {
		res := engine.RunRound(context.Background(), bc, nil, nil)
		require.True(res.Success)
		require.Equal(phases, res.Rounds)
		require.NotNil(res.Block)
	}
	require.Equal(11, bc.Height())
	require.True(bc.IsValid())
}

func TestByzantineSubsetFixedBySeed(t *testing.T) {
	require := require.New(t)

	build := func() []string {
		engine, err := New(Config{Validators: testValidators(7), Byzantine: 2, Seed: 99}, log.NoLog{})
		require.NoError(err)

		var marked []string
		for _, v := range engine.roster {
			if v.byzantine {
				marked = append(marked, v.address)
			}
		}
		return marked
	}

	first := build()
	require.Len(first, 2)
	require.Equal(first, build())
}

func TestLeaderRotatesEveryRound(t *testing.T) {
	require := require.New(t)

	validators := testValidators(4)
	bc := chain.New(0)
	engine, err := New(Config{Validators: validators, Byzantine: 0, Seed: 1}, log.NoLog{})
	require.NoError(err)

	for i := 0; i < 6; i++ {
		res := engine.RunRound(context.Background(), bc, nil, nil)
		require.True(res.Success)
		require.Equal(validators[i%len(validators)], res.Proposer)
	}
}

func TestQuorumFailureLeavesChainUntouched(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine, err := New(Config{Validators: testValidators(4), Byzantine: 1, Seed: 7}, log.NoLog{})
	require.NoError(err)
	require.Equal(3, engine.Quorum())

	// Silence two extra validators so only two honest ones remain, below
	// the quorum of three.
	silenced := 0
	for _, v := range engine.roster {
		if !v.byzantine && silenced < 2 {
			v.byzantine = true
			silenced++
		}
	}

	res := engine.RunRound(context.Background(), bc, nil, nil)
	require.False(res.Success)
	require.Nil(res.Block)
	require.Equal(phases, res.Rounds)
	require.Contains(res.Message, "failed to reach consensus")
	require.Equal(1, bc.Height())

	// The view still advanced, so the next round has a new leader.
	require.Equal(1, engine.view)
}

func TestHonestValidatorsPrepareAndCommit(t *testing.T) {
	require := require.New(t)

	bc := chain.New(0)
	engine, err := New(Config{Validators: testValidators(7), Byzantine: 2, Seed: 11}, log.NoLog{})
	require.NoError(err)

	res := engine.RunRound(context.Background(), bc, nil, nil)
	require.True(res.Success)

	for _, v := range engine.roster {
		if v.byzantine {
			// Byzantine validators received everything but answered
			// nothing.
			require.False(v.prepared)
			require.False(v.committed)
			require.Equal(5, v.prepares.Len())
			require.Equal(5, v.commits.Len())
		} else {
			require.True(v.prepared)
			require.True(v.committed)
		}
	}
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	factory := &Factory{Config: Config{Validators: testValidators(4), Byzantine: 1, Seed: 2}}
	protocol, err := factory.New(log.NoLog{})
	require.NoError(err)
	require.Equal(Name, protocol.Name())

	bad := &Factory{Config: Config{Validators: testValidators(4), Byzantine: 2}}
	_, err = bad.New(log.NoLog{})
	require.ErrorIs(err, errTooManyByzantine)
}
