// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
)

// LayoutVersion identifies the key and record layout written by this package.
const LayoutVersion byte = 1

const (
	layoutKey byte = iota
)

var (
	errLayoutMismatch = errors.New("state was written with a different layout")

	_ MetaState = (*metaState)(nil)
)

// MetaState tracks bookkeeping that lives outside the account key layout.
type MetaState interface {
	// IsInitialized reports whether SetInitialized was ever committed.
	IsInitialized() (bool, error)
	// SetInitialized stamps the database with LayoutVersion.
	SetInitialized() error
	// CheckLayout fails if the database was stamped with another layout.
	// An unstamped database passes.
	CheckLayout() error
}

type metaState struct {
	metaDB database.Database
}

func NewMetaState(db database.Database) MetaState {
	return &metaState{
		metaDB: db,
	}
}

func (s *metaState) IsInitialized() (bool, error) {
	return s.metaDB.Has([]byte{layoutKey})
}

func (s *metaState) SetInitialized() error {
	return s.metaDB.Put([]byte{layoutKey}, []byte{LayoutVersion})
}

func (s *metaState) CheckLayout() error {
	stamp, err := s.metaDB.Get([]byte{layoutKey})
	switch {
	case err == database.ErrNotFound:
		return nil
	case err != nil:
		return err
	case len(stamp) != 1 || stamp[0] != LayoutVersion:
		return fmt.Errorf("%w: found %x, want %x", errLayoutMismatch, stamp, LayoutVersion)
	}
	return nil
}
