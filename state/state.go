// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
)

const defaultCodeCacheSize = 1024

var (
	// These are prefixes for db keys.
	// Account data lives under the key layout of package types inside
	// stateDB; bookkeeping that is not part of that layout lives in metaDB.
	metaPrefix  = []byte("meta")
	statePrefix = []byte("state")

	_ State = &state{}
)

// Config tunes a State.
type Config struct {
	// CodeCacheSize is the number of contract codes kept in memory.
	CodeCacheSize int
}

// State is the persistent account state of the VM, plus the methods needed
// to manage commits.
type State interface {
	MetaState
	AccountState
	ChainState

	// Commit writes pending operations to the underlying database.
	Commit() error
	// Abort drops pending operations.
	Abort()
	Close() error
}

type state struct {
	MetaState
	AccountState
	ChainState

	baseDB *versiondb.Database
}

func NewState(db database.Database, config Config, logger log.Logger) State {
	if config.CodeCacheSize <= 0 {
		config.CodeCacheSize = defaultCodeCacheSize
	}
	if logger == nil {
		logger = log.Root()
	}

	baseDB := versiondb.New(db)
	metaDB := prefixdb.New(metaPrefix, baseDB)
	stateDB := prefixdb.New(statePrefix, baseDB)

	return &state{
		MetaState:    NewMetaState(metaDB),
		AccountState: NewAccountState(stateDB, config.CodeCacheSize),
		ChainState:   NewChainState(stateDB, logger),
		baseDB:       baseDB,
	}
}

func (s *state) Commit() error {
	return s.baseDB.Commit()
}

// Abort drops pending writes and forgets cached reads that may reflect
// them.
func (s *state) Abort() {
	s.baseDB.Abort()
	s.AccountState.ClearCache()
}

// Close drops uncommitted operations and closes the base database.
func (s *state) Close() error {
	s.AccountState.ClearCache()
	return s.baseDB.Close()
}
