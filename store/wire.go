// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"fmt"
	"strconv"

	"github.com/luxfi/chainsim/chain"
)

// wireTransaction is the archived form of a transaction. Amounts travel as
// their shortest base-10 rendering because the linear codec carries no
// floats; timestamps travel as their two's-complement bit pattern.
type wireTransaction struct {
	ID        string `serialize:"true"`
	Sender    string `serialize:"true"`
	Recipient string `serialize:"true"`
	Amount    string `serialize:"true"`
	Timestamp uint64 `serialize:"true"`
}

// wireBlock is the archived form of a block.
type wireBlock struct {
	Index        uint64             `serialize:"true"`
	Timestamp    uint64             `serialize:"true"`
	Transactions []*wireTransaction `serialize:"true"`
	PreviousHash string             `serialize:"true"`
	Nonce        uint64             `serialize:"true"`
	Validator    string             `serialize:"true"`
	Hash         string             `serialize:"true"`
}

func toWire(b *chain.Block) *wireBlock {
	txs := make([]*wireTransaction, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		txs = append(txs, &wireTransaction{
			ID:        tx.ID,
			Sender:    tx.Sender,
			Recipient: tx.Recipient,
			Amount:    strconv.FormatFloat(tx.Amount, 'g', -1, 64),
			Timestamp: uint64(tx.Timestamp),
		})
	}
	return &wireBlock{
		Index:        b.Index,
		Timestamp:    uint64(b.Timestamp),
		Transactions: txs,
		PreviousHash: b.PreviousHash,
		Nonce:        b.Nonce,
		Validator:    b.Validator,
		Hash:         b.Hash,
	}
}

func fromWire(wb *wireBlock) (*chain.Block, error) {
	txs := make([]*chain.Transaction, 0, len(wb.Transactions))
	for i, wt := range wb.Transactions {
		amount, err := strconv.ParseFloat(wt.Amount, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d amount %q: %w", ErrCorrupt, i, wt.Amount, err)
		}
		txs = append(txs, &chain.Transaction{
			ID:        wt.ID,
			Sender:    wt.Sender,
			Recipient: wt.Recipient,
			Amount:    amount,
			Timestamp: int64(wt.Timestamp),
		})
	}
	return &chain.Block{
		Index:        wb.Index,
		Timestamp:    int64(wb.Timestamp),
		Transactions: txs,
		PreviousHash: wb.PreviousHash,
		Nonce:        wb.Nonce,
		Validator:    wb.Validator,
		Hash:         wb.Hash,
	}, nil
}
