// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/evmbridge/types"
)

var (
	chainIDKey = types.ConfigKey("chain_id")
	blockKey   = types.ConfigKey("block")

	errChainNotStarted = errors.New("chain has not been started")
	errNoBlock         = errors.New("no block has been started")

	_ ChainState = &chainState{}
)

// ChainState holds chain configuration and the environment of the block
// being executed. Logs are buffered in memory until the host collects them.
type ChainState interface {
	BeginChain(*types.BeginChainArgs) error
	ChainID() (types.Word, error)
	BeginBlock(*types.BeginBlockArgs) error
	BlockEnv() (*types.BeginBlockArgs, error)

	EmitLog(*types.Log) error
	// Logs returns the encoded logs of the current block that have not been
	// taken yet.
	Logs() [][]byte
	// TakeLogs is Logs, and clears the buffer.
	TakeLogs() [][]byte
}

type chainState struct {
	db     database.Database
	logger log.Logger
	logs   [][]byte
}

func NewChainState(db database.Database, logger log.Logger) ChainState {
	return &chainState{
		db:     db,
		logger: logger.New("module", "chain"),
	}
}

func (s *chainState) BeginChain(args *types.BeginChainArgs) error {
	if err := s.db.Put(chainIDKey, args.ChainID[:]); err != nil {
		return fmt.Errorf("failed to store chain id: %w", err)
	}
	s.logger.Info("chain started", "chainID", args.ChainID.Int())
	return nil
}

func (s *chainState) ChainID() (types.Word, error) {
	var id types.Word
	raw, err := s.db.Get(chainIDKey)
	if err == database.ErrNotFound {
		return id, errChainNotStarted
	}
	if err != nil {
		return id, err
	}
	if len(raw) != types.WordLen {
		return id, errCorruptWord
	}
	copy(id[:], raw)
	return id, nil
}

func (s *chainState) BeginBlock(args *types.BeginBlockArgs) error {
	if err := s.db.Put(blockKey, args.Bytes()); err != nil {
		return fmt.Errorf("failed to store block env: %w", err)
	}
	s.logs = nil
	s.logger.Debug("block started", "number", args.Number.Int(), "hash", types.BytesToHex(args.Hash[:]))
	return nil
}

func (s *chainState) BlockEnv() (*types.BeginBlockArgs, error) {
	raw, err := s.db.Get(blockKey)
	if err == database.ErrNotFound {
		return nil, errNoBlock
	}
	if err != nil {
		return nil, err
	}
	return types.ParseBeginBlockArgs(raw)
}

func (s *chainState) EmitLog(l *types.Log) error {
	raw, err := types.LogToBytes(l)
	if err != nil {
		s.logger.Warn("dropping log", "address", l.Address, "topics", len(l.Topics), "err", err)
		return err
	}
	s.logs = append(s.logs, raw)
	return nil
}

func (s *chainState) Logs() [][]byte {
	return s.logs
}

func (s *chainState) TakeLogs() [][]byte {
	logs := s.logs
	s.logs = nil
	return logs
}
