// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package store archives finalized blocks in a key value database.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/luxfi/cache"
	"github.com/luxfi/database"
	"github.com/luxfi/database/memdb"

	"github.com/luxfi/chainsim/chain"
)

var (
	ErrBlockNotFound = errors.New("block not found")
	ErrUnsealedBlock = errors.New("block is not sealed")
	ErrCorrupt       = errors.New("archive entry corrupted")

	prefixBlock = []byte("block:")
	keyTip      = []byte("tip")
)

const blockCacheSize = 64

// Archive persists finalized blocks keyed by hash, with a read-through LRU
// in front of the database.
type Archive struct {
	mu sync.RWMutex
	db database.Database

	blocks *cache.LRU[string, *chain.Block]

	count        uint64
	lastAccepted string
}

// New returns an archive backed by db. A nil db falls back to an in-memory
// database, matching the single-run scope of the simulator.
func New(db database.Database) *Archive {
	if db == nil {
		db = memdb.New()
	}
	return &Archive{
		db:     db,
		blocks: &cache.LRU[string, *chain.Block]{Size: blockCacheSize},
	}
}

// Initialize loads the tip pointer left by a previous archive over the same
// database.
func (a *Archive) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	tipBytes, err := a.db.Get(keyTip)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load tip: %w", err)
	}
	if len(tipBytes) < 8 {
		return ErrCorrupt
	}
	a.count = binary.BigEndian.Uint64(tipBytes[:8])
	a.lastAccepted = string(tipBytes[8:])
	return nil
}

// Put archives a sealed block. Re-archiving a hash overwrites the stored
// entry without growing the count.
func (a *Archive) Put(b *chain.Block) error {
	if b.Hash == "" {
		return ErrUnsealedBlock
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	key := blockKey(b.Hash)
	known, err := a.db.Has(key)
	if err != nil {
		return err
	}

	wb := toWire(b)
	data, err := blockCodec.Marshal(codecVersion, wb)
	if err != nil {
		return err
	}
	if err := a.db.Put(key, data); err != nil {
		return err
	}

	if !known {
		a.count++
	}
	a.lastAccepted = b.Hash
	if err := a.putTip(); err != nil {
		return err
	}

	a.blocks.Put(b.Hash, b)
	return nil
}

// Get returns the archived block with the given hash.
func (a *Archive) Get(hash string) (*chain.Block, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if b, ok := a.blocks.Get(hash); ok {
		return b, nil
	}

	data, err := a.db.Get(blockKey(hash))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}

	wb := &wireBlock{}
	if _, err := blockCodec.Unmarshal(data, wb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	b, err := fromWire(wb)
	if err != nil {
		return nil, err
	}

	a.blocks.Put(hash, b)
	return b, nil
}

// Has reports whether a block with the given hash is archived.
func (a *Archive) Has(hash string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, ok := a.blocks.Get(hash); ok {
		return true, nil
	}
	return a.db.Has(blockKey(hash))
}

// Len returns the number of distinct blocks archived.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return int(a.count)
}

// LastAccepted returns the hash of the most recently archived block. The
// boolean is false while the archive is empty.
func (a *Archive) LastAccepted() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastAccepted, a.lastAccepted != ""
}

// Close releases the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) putTip() error {
	data := make([]byte, 8+len(a.lastAccepted))
	binary.BigEndian.PutUint64(data[:8], a.count)
	copy(data[8:], a.lastAccepted)
	return a.db.Put(keyTip, data)
}

func blockKey(hash string) []byte {
	return append(prefixBlock, hash...)
}
