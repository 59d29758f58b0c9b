// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"fmt"
	"net/http"
	"sync"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/utils/formatting"

	"github.com/ava-labs/evmbridge/state"
	"github.com/ava-labs/evmbridge/types"
)

// StateName is the RPC namespace of the state service.
const StateName = "evmstate"

// StateService reads and writes contract storage of a State through the
// same records a host dispatcher would hand over.
type StateService struct {
	log log.Logger

	// lock guards state; writes and their commit happen atomically
	lock  sync.RWMutex
	state state.State
}

// NewStateService ...
func NewStateService(logger log.Logger, s state.State) *StateService {
	return &StateService{
		log:   logger,
		state: s,
	}
}

// SetStorageArgs are arguments for SetStorage
type SetStorageArgs struct {
	Address string `json:"address"`
	Slot    string `json:"slot"`
	Value   string `json:"value"`
}

// SetStorageReply is the reply from SetStorage
type SetStorageReply struct {
	Success bool `json:"success"`
}

// SetStorage writes a storage slot and commits it. A zero value clears
// the slot.
func (s *StateService) SetStorage(_ *http.Request, args *SetStorageArgs, reply *SetStorageReply) error {
	address, err := types.HexToAddress(args.Address)
	if err != nil {
		return fmt.Errorf("couldn't parse address: %w", err)
	}
	slot, err := types.HexToHash(args.Slot)
	if err != nil {
		return fmt.Errorf("couldn't parse slot: %w", err)
	}
	value, err := types.HexToHash(args.Value)
	if err != nil {
		return fmt.Errorf("couldn't parse value: %w", err)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.state.SetStorage(address, slot, types.Word(value)); err != nil {
		s.state.Abort()
		return err
	}
	if err := s.state.Commit(); err != nil {
		return err
	}
	s.log.Debug("storage written", "address", address, "slot", slot)
	reply.Success = true
	return nil
}

// GetStorageAtArgs carry an encoded storage-read record
type GetStorageAtArgs struct {
	Record   string              `json:"record"`
	Encoding formatting.Encoding `json:"encoding"`
}

// GetStorageAtReply is the reply from GetStorageAt
type GetStorageAtReply struct {
	Value string `json:"value"`
}

// GetStorageAt answers a storage-read record. Unset slots read as zero.
func (s *StateService) GetStorageAt(_ *http.Request, args *GetStorageAtArgs, reply *GetStorageAtReply) error {
	raw, err := formatting.Decode(args.Encoding, args.Record)
	if err != nil {
		return fmt.Errorf("couldn't decode record: %w", err)
	}
	record, err := types.ParseGetStorageAtArgs(raw)
	if err != nil {
		return err
	}
	s.lock.RLock()
	value, err := s.state.GetStorageAt(record)
	s.lock.RUnlock()
	if err != nil {
		return err
	}
	reply.Value = value.String()
	return nil
}

// SlotsArgs are arguments for Slots
type SlotsArgs struct {
	Address string `json:"address"`
}

// SlotsReply maps each set slot of an address to its value, in key order
type SlotsReply struct {
	Slots  []string `json:"slots"`
	Values []string `json:"values"`
}

// Slots lists the set storage slots of an address.
func (s *StateService) Slots(_ *http.Request, args *SlotsArgs, reply *SlotsReply) error {
	address, err := types.HexToAddress(args.Address)
	if err != nil {
		return fmt.Errorf("couldn't parse address: %w", err)
	}
	s.lock.RLock()
	defer s.lock.RUnlock()

	reply.Slots = []string{}
	reply.Values = []string{}
	return s.state.StorageSlots(address, func(slot types.Hash, value types.Word) bool {
		reply.Slots = append(reply.Slots, slot.String())
		reply.Values = append(reply.Values, value.String())
		return true
	})
}
