// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewChainStartsAtGenesis(t *testing.T) {
	require := require.New(t)

	bc := New(DefaultDifficulty)
	require.Equal(1, bc.Height())
	require.Equal(uint64(0), bc.LatestBlock().Index)
	require.Equal(DefaultDifficulty, bc.Difficulty())
	require.Zero(bc.PendingCount())
	require.True(bc.IsValid())

	// Negative difficulty degenerates to zero.
	require.Zero(New(-3).Difficulty())
}

func TestCreateNextBlockLinksToTip(t *testing.T) {
	require := require.New(t)

	bc := New(0)
	bc.Clock().Set(time.Unix(0, 12345))

	draft := bc.CreateNextBlock(nil, "val")
	require.Equal(uint64(1), draft.Index)
	require.Equal(int64(12345), draft.Timestamp)
	require.Equal(bc.LatestBlock().Hash, draft.PreviousHash)
	require.Equal("val", draft.Validator)
	require.Empty(draft.Hash)

	// Drafting has no effect on the stored chain.
	require.Equal(1, bc.Height())
}

func TestCreateNextBlockPoolDraining(t *testing.T) {
	require := require.New(t)

	bc := New(0)
	tx1, err := NewTransaction("a", "b", 1, 1)
	require.NoError(err)
	tx2, err := NewTransaction("b", "c", 2, 2)
	require.NoError(err)
	bc.AddTransaction(tx1)
	bc.AddTransaction(tx2)
	require.Equal(2, bc.PendingCount())

	// Explicit transactions leave the pool untouched.
	own, err := NewTransaction("c", "d", 3, 3)
	require.NoError(err)
	blk := bc.CreateNextBlock([]*Transaction{own}, "val")
	require.Equal([]*Transaction{own}, blk.Transactions)
	require.Equal(2, bc.PendingCount())

	// An explicit empty batch is still explicit.
	blk = bc.CreateNextBlock([]*Transaction{}, "val")
	require.Empty(blk.Transactions)
	require.Equal(2, bc.PendingCount())

	// Nil drains the whole pool in FIFO order.
	blk = bc.CreateNextBlock(nil, "val")
	require.Equal([]*Transaction{tx1, tx2}, blk.Transactions)
	require.Zero(bc.PendingCount())
}

func TestAddBlockAdmission(t *testing.T) {
	require := require.New(t)

	bc := New(0)

	// Unsealed drafts are refused.
	draft := bc.CreateNextBlock(nil, "val")
	require.False(bc.AddBlock(draft))
	require.Equal(1, bc.Height())

	// Stale hashes are refused.
	draft.Seal()
	draft.Nonce++
	require.False(bc.AddBlock(draft))
	require.Equal(1, bc.Height())

	// A sealed draft on the current tip is accepted, exactly once.
	draft.Seal()
	require.True(bc.AddBlock(draft))
	require.Equal(2, bc.Height())
	require.Equal(draft, bc.LatestBlock())

	// A block that does not link to the tip is refused.
	orphan := NewBlock(2, 7, nil, strings.Repeat("f", 64), "val")
	orphan.Seal()
	require.False(bc.AddBlock(orphan))
	require.Equal(2, bc.Height())

	require.True(bc.IsValid())
}

func TestValidityDetectsTampering(t *testing.T) {
	require := require.New(t)

	bc := New(0)
	for i := 0; i < 3; i++ {
		tx, err := NewTransaction("a", "b", float64(i+1), int64(i))
		require.NoError(err)
		blk := bc.CreateNextBlock([]*Transaction{tx}, "val")
		require.NoError(blk.Mine(context.Background(), 0))
		require.True(bc.AddBlock(blk))

		// Validity is monotonic across accepted appends.
		require.True(bc.IsValid())
	}

	// Rewriting a historical nonce breaks hash integrity.
	victim := bc.blocks[1]
	victim.Nonce++
	require.False(bc.IsValid())
	require.ErrorContains(bc.Validate(), "block 1")

	// Resealing the rewrite breaks linkage to the successor instead.
	victim.Seal()
	require.False(bc.IsValid())
	require.ErrorContains(bc.Validate(), "block 2")

	// Undoing the rewrite restores validity.
	victim.Nonce--
	victim.Seal()
	require.True(bc.IsValid())

	// Swapping a historical transaction is caught the same way.
	other, err := NewTransaction("x", "y", 9, 9)
	require.NoError(err)
	victim.Transactions[0] = other
	require.False(bc.IsValid())
}

func TestClockPinning(t *testing.T) {
	require := require.New(t)

	var clk Clock
	pinned := time.Unix(1000, 42)
	clk.Set(pinned)
	require.Equal(pinned, clk.Time())
	require.Equal(pinned.UnixNano(), clk.UnixNano())

	clk.Sync()
	require.NotEqual(pinned, clk.Time())
}
