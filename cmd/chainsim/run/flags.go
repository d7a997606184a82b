// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package run

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/luxfi/chainsim/simnet"
)

const (
	AlgorithmKey   = "algorithm"
	RoundsKey      = "rounds"
	SeedKey        = "seed"
	DifficultyKey  = "difficulty"
	TxsPerRoundKey = "txs-per-round"
	NodesKey       = "nodes"
	ByzantineKey   = "byzantine"
	DelegatesKey   = "delegates"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(AlgorithmKey, "all", "Algorithm to simulate (all, pow, pos, dpos or pbft)")
	flags.Int(RoundsKey, 5, "Number of consensus rounds per algorithm")
	flags.Int64(SeedKey, 42, "Random seed for reproducibility (0 derives one from the clock)")
	flags.Int(DifficultyKey, simnet.DefaultPoWDifficulty, "Leading zero target for PoW mining")
	flags.Int(TxsPerRoundKey, 3, "Transactions generated per round")
	flags.Int(NodesKey, 0, "Number of nodes (0 uses each scenario's default)")
	flags.Int(ByzantineKey, simnet.DefaultPBFTByzantine, "Number of byzantine nodes in the PBFT scenario")
	flags.Int(DelegatesKey, simnet.DefaultDPoSDelegates, "Number of delegate slots in the DPoS scenario")
}

type Config struct {
	Algorithm   string
	Rounds      int
	Seed        int64
	Difficulty  int
	TxsPerRound int
	Nodes       int
	Byzantine   int
	Delegates   int
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	algorithm, err := flags.GetString(AlgorithmKey)
	if err != nil {
		return nil, err
	}
	switch algorithm {
	case "all", "pow", "pos", "dpos", "pbft":
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}

	rounds, err := flags.GetInt(RoundsKey)
	if err != nil {
		return nil, err
	}

	seed, err := flags.GetInt64(SeedKey)
	if err != nil {
		return nil, err
	}

	difficulty, err := flags.GetInt(DifficultyKey)
	if err != nil {
		return nil, err
	}

	txsPerRound, err := flags.GetInt(TxsPerRoundKey)
	if err != nil {
		return nil, err
	}

	nodes, err := flags.GetInt(NodesKey)
	if err != nil {
		return nil, err
	}

	byzantine, err := flags.GetInt(ByzantineKey)
	if err != nil {
		return nil, err
	}

	delegates, err := flags.GetInt(DelegatesKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Algorithm:   algorithm,
		Rounds:      rounds,
		Seed:        seed,
		Difficulty:  difficulty,
		TxsPerRound: txsPerRound,
		Nodes:       nodes,
		Byzantine:   byzantine,
		Delegates:   delegates,
	}, nil
}
