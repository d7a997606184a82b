// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"fmt"
)

// DefaultDifficulty is the base difficulty a chain is configured with when
// the caller has no opinion.
const DefaultDifficulty = 2

var errInvalidChain = errors.New("invalid chain")

// Blockchain is an append only, hash linked sequence of blocks plus a FIFO
// pool of transactions waiting for inclusion. The chain exclusively owns
// both: history is extended through AddBlock and nowhere else. Not safe for
// concurrent use; a single round driver owns the chain.
type Blockchain struct {
	clock Clock

	difficulty int
	blocks     []*Block
	pending    []*Transaction
}

// New returns a chain holding only the genesis block. A difficulty below
// zero is treated as zero.
func New(difficulty int) *Blockchain {
	if difficulty < 0 {
		difficulty = 0
	}
	return &Blockchain{
		difficulty: difficulty,
		blocks:     []*Block{Genesis()},
	}
}

// Height is the number of blocks in the chain, genesis included.
func (bc *Blockchain) Height() int {
	return len(bc.blocks)
}

// LatestBlock returns the newest block. The chain is never empty, so this
// always succeeds.
func (bc *Blockchain) LatestBlock() *Block {
	return bc.blocks[len(bc.blocks)-1]
}

// Difficulty returns the chain's configured base difficulty.
func (bc *Blockchain) Difficulty() int {
	return bc.difficulty
}

// Clock exposes the chain's clock so callers can pin block timestamps.
func (bc *Blockchain) Clock() *Clock {
	return &bc.clock
}

// AddTransaction queues a transaction in the pending pool. The pool is
// consumed in FIFO order by CreateNextBlock.
func (bc *Blockchain) AddTransaction(tx *Transaction) {
	bc.pending = append(bc.pending, tx)
}

// PendingCount returns the number of transactions waiting in the pool.
func (bc *Blockchain) PendingCount() int {
	return len(bc.pending)
}

// CreateNextBlock assembles the next unsealed draft: index one past the
// tip, previous hash of the tip, timestamped now. A nil txs drains the
// whole pending pool into the draft; a non-nil txs (even an empty one) is
// used as given and leaves the pool untouched. The stored chain is not
// modified either way.
func (bc *Blockchain) CreateNextBlock(txs []*Transaction, validator string) *Block {
	if txs == nil {
		txs = bc.pending
		bc.pending = nil
	}
	latest := bc.LatestBlock()
	return NewBlock(latest.Index+1, bc.clock.UnixNano(), txs, latest.Hash, validator)
}

// AddBlock is the single admission gate. The block is appended iff it
// links to the current tip, carries a hash, and that hash recomputes over
// its contents. On any miss the chain is left exactly as it was.
func (bc *Blockchain) AddBlock(b *Block) bool {
	latest := bc.LatestBlock()
	if b.PreviousHash != latest.Hash {
		return false
	}
	if b.Hash == "" {
		return false
	}
	if b.Hash != b.ComputeHash() {
		return false
	}
	bc.blocks = append(bc.blocks, b)
	return true
}

// IsValid reports whether the whole history holds the chain invariants:
// every non-genesis block recomputes to its stored hash and links to its
// predecessor. It never panics on any input.
func (bc *Blockchain) IsValid() bool {
	return bc.Validate() == nil
}

// Validate is IsValid with a cause: it reports the first index whose hash
// or linkage diverges.
func (bc *Blockchain) Validate() error {
	for i := 1; i < len(bc.blocks); i++ {
		cur, prev := bc.blocks[i], bc.blocks[i-1]
		if cur.Hash != cur.ComputeHash() {
			return fmt.Errorf("%w: block %d hash does not recompute", errInvalidChain, i)
		}
		if cur.PreviousHash != prev.Hash {
			return fmt.Errorf("%w: block %d does not link to block %d", errInvalidChain, i, i-1)
		}
	}
	return nil
}

func (bc *Blockchain) String() string {
	return fmt.Sprintf("Blockchain(height=%d, pending_txs=%d)", bc.Height(), len(bc.pending))
}
