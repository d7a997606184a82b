// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simnet

import (
	"context"
	"testing"

	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/chainsim/protocols/dpos"
	"github.com/luxfi/chainsim/protocols/pbft"
	"github.com/luxfi/chainsim/protocols/pos"
	"github.com/luxfi/chainsim/protocols/pow"
)

func TestRunPoWScenario(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 3, TxsPerRound: 2, Seed: 7}
	report, err := RunPoWScenario(context.Background(), cfg, 3, 1, log.NoLog{})
	require.NoError(err)

	require.Equal(pow.Name, report.Algorithm)
	require.Equal(3, report.SuccessfulRounds)
	require.Zero(report.FailedRounds)
	require.Equal(4, report.FinalHeight)
	require.Equal(6, report.TotalTxsProcessed)
}

func TestRunPoSScenario(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 4, TxsPerRound: 2, Seed: 11}
	report, err := RunPoSScenario(context.Background(), cfg, 4, log.NoLog{})
	require.NoError(err)

	require.Equal(pos.Name, report.Algorithm)
	require.Equal(4, report.SuccessfulRounds)
	require.Equal(5, report.FinalHeight)
}

func TestRunDPoSScenario(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 5, TxsPerRound: 2, Seed: 13}
	report, err := RunDPoSScenario(context.Background(), cfg, 5, 2, log.NoLog{})
	require.NoError(err)

	require.Equal(dpos.Name, report.Algorithm)
	require.Equal(5, report.SuccessfulRounds)
	require.Equal(6, report.FinalHeight)
}

func TestRunPBFTScenario(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 3, TxsPerRound: 2, Seed: 17}
	report, err := RunPBFTScenario(context.Background(), cfg, 7, 2, log.NoLog{})
	require.NoError(err)

	require.Equal(pbft.Name, report.Algorithm)
	require.Equal(3, report.SuccessfulRounds)
	require.Equal(4, report.FinalHeight)
}

func TestRunPBFTScenarioRejectsImpossibleTolerance(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 1, Seed: 1}
	_, err := RunPBFTScenario(context.Background(), cfg, 4, 2, log.NoLog{})
	require.ErrorContains(err, "exceeds pbft tolerance")
}

func TestRunAllScenarios(t *testing.T) {
	require := require.New(t)

	cfg := Config{Rounds: 2, TxsPerRound: 2, Seed: 1}
	reports, err := RunAllScenarios(context.Background(), cfg, log.NoLog{})
	require.NoError(err)
	require.Len(reports, 4)

	require.Equal(pow.Name, reports[0].Algorithm)
	require.Equal(pos.Name, reports[1].Algorithm)
	require.Equal(dpos.Name, reports[2].Algorithm)
	require.Equal(pbft.Name, reports[3].Algorithm)

	for _, report := range reports {
		require.Equal(2, report.SuccessfulRounds)
		require.Equal(3, report.FinalHeight)
	}
}
