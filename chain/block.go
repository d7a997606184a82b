// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/luxfi/crypto/hash"
)

// GenesisValidator is the proposer recorded on the chain's first block.
const GenesisValidator = "genesis"

// genesisPreviousHash anchors the genesis block: 64 zero digits, the width
// of a hex encoded SHA-256 digest.
var genesisPreviousHash = strings.Repeat("0", 64)

// Block is one element of the hash linked chain. A block starts as an
// unsealed draft (empty Hash), is mutated by exactly one protocol (nonce
// search or direct sealing) and is immutable once accepted by the chain.
type Block struct {
	Index        uint64
	Timestamp    int64
	Transactions []*Transaction
	PreviousHash string
	Nonce        uint64
	Validator    string
	Hash         string
}

// NewBlock assembles an unsealed draft. Hash stays empty until Mine or Seal
// runs, and the chain refuses drafts whose Hash is unset.
func NewBlock(index uint64, timestamp int64, txs []*Transaction, previousHash, validator string) *Block {
	return &Block{
		Index:        index,
		Timestamp:    timestamp,
		Transactions: txs,
		PreviousHash: previousHash,
		Validator:    validator,
	}
}

// ComputeHash digests index, timestamp, each transaction's ID in block
// order, previous hash, nonce and validator, concatenated in that fixed
// order with no separators and numbers in base-10 ASCII. The field order is
// a wire contract: identical fields must hash identically everywhere.
func (b *Block) ComputeHash() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(b.Index, 10))
	sb.WriteString(strconv.FormatInt(b.Timestamp, 10))
	for _, tx := range b.Transactions {
		sb.WriteString(tx.ID)
	}
	sb.WriteString(b.PreviousHash)
	sb.WriteString(strconv.FormatUint(b.Nonce, 10))
	sb.WriteString(b.Validator)
	return hex.EncodeToString(hash.ComputeHash256([]byte(sb.String())))
}

// Seal computes and stores the hash over the block's current contents.
func (b *Block) Seal() {
	b.Hash = b.ComputeHash()
}

// Mine searches for a nonce whose digest carries at least difficulty
// leading '0' hex digits, trying the current nonce first and incrementing
// on each miss. Difficulty zero (or below) accepts the first digest without
// touching the nonce. The search is unbounded, so cancellation of ctx is
// the only way to stop a search that is too hard.
func (b *Block) Mine(ctx context.Context, difficulty int) error {
	if difficulty < 0 {
		difficulty = 0
	}
	target := strings.Repeat("0", difficulty)
	for {
		candidate := b.ComputeHash()
		if strings.HasPrefix(candidate, target) {
			b.Hash = candidate
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		b.Nonce++
	}
}

// Genesis returns the fixed first block: index 0, timestamp 0, no
// transactions, a previous hash of 64 zero digits and the genesis
// validator. The block is sealed immediately.
func Genesis() *Block {
	b := NewBlock(0, 0, nil, genesisPreviousHash, GenesisValidator)
	b.Seal()
	return b
}

func (b *Block) String() string {
	short := b.Hash
	if short == "" {
		short = "unsealed"
	} else if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("Block(#%d, txs=%d, hash=%s..)", b.Index, len(b.Transactions), short)
}
