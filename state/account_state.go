// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/ava-labs/evmbridge/types"
)

var (
	errCorruptWord = errors.New("stored word is not 32 bytes")

	_ AccountState = &accountState{}
)

// AccountState reads and writes account data under the key layout of
// package types. Missing entries read as zero or empty.
type AccountState interface {
	GetNonce(types.Address) (*uint256.Int, error)
	SetNonce(types.Address, *uint256.Int) error
	GetBalance(types.Address) (*uint256.Int, error)
	SetBalance(types.Address, *uint256.Int) error
	GetCode(types.Address) ([]byte, error)
	SetCode(types.Address, []byte) error

	GetStorage(address types.Address, slot types.Hash) (types.Word, error)
	// SetStorage writes [value] to [slot]. A zero value removes the slot.
	SetStorage(address types.Address, slot types.Hash, value types.Word) error
	GetStorageAt(*types.GetStorageAtArgs) (types.Word, error)
	// StorageSlots calls [f] for every non-zero slot of [address] in
	// ascending slot order, stopping early if [f] returns false.
	StorageSlots(address types.Address, f func(slot types.Hash, value types.Word) bool) error

	ClearCache()
}

type accountState struct {
	codeCache cache.Cacher
	db        database.Database
}

func NewAccountState(db database.Database, codeCacheSize int) AccountState {
	return &accountState{
		codeCache: &cache.LRU{Size: codeCacheSize},
		db:        db,
	}
}

func (s *accountState) GetNonce(address types.Address) (*uint256.Int, error) {
	return s.getWord(types.Nonce, address)
}

func (s *accountState) SetNonce(address types.Address, nonce *uint256.Int) error {
	return s.putWord(types.Nonce, address, nonce)
}

func (s *accountState) GetBalance(address types.Address) (*uint256.Int, error) {
	return s.getWord(types.Balance, address)
}

func (s *accountState) SetBalance(address types.Address, balance *uint256.Int) error {
	return s.putWord(types.Balance, address, balance)
}

// GetCode returns a copy of the code of [address]; callers may modify it.
func (s *accountState) GetCode(address types.Address) ([]byte, error) {
	if code, ok := s.codeCache.Get(address); ok {
		return copyCode(code.([]byte)), nil
	}

	key := types.AddressKey(types.Code, address)
	code, err := s.db.Get(key[:])
	switch {
	case err == database.ErrNotFound:
		code = nil
	case err != nil:
		return nil, err
	}
	s.codeCache.Put(address, code)
	return copyCode(code), nil
}

func (s *accountState) SetCode(address types.Address, code []byte) error {
	key := types.AddressKey(types.Code, address)
	if len(code) == 0 {
		s.codeCache.Evict(address)
		return s.db.Delete(key[:])
	}
	code = copyCode(code)
	if err := s.db.Put(key[:], code); err != nil {
		return err
	}
	s.codeCache.Put(address, code)
	return nil
}

func copyCode(code []byte) []byte {
	if code == nil {
		return nil
	}
	return append([]byte(nil), code...)
}

func (s *accountState) GetStorage(address types.Address, slot types.Hash) (types.Word, error) {
	key := types.StorageKey(address, slot)
	return s.getRawWord(key[:])
}

func (s *accountState) SetStorage(address types.Address, slot types.Hash, value types.Word) error {
	key := types.StorageKey(address, slot)
	if value.IsZero() {
		return s.db.Delete(key[:])
	}
	return s.db.Put(key[:], value[:])
}

func (s *accountState) GetStorageAt(args *types.GetStorageAtArgs) (types.Word, error) {
	return s.GetStorage(args.Address, args.Key)
}

func (s *accountState) StorageSlots(address types.Address, f func(types.Hash, types.Word) bool) error {
	prefix := types.AddressKey(types.Storage, address)
	it := s.db.NewIteratorWithPrefix(prefix[:])
	defer it.Release()

	for it.Next() {
		_, slot, ok := types.ParseStorageKey(it.Key())
		if !ok {
			return fmt.Errorf("unexpected key %s under storage prefix", types.BytesToHex(it.Key()))
		}
		var value types.Word
		if len(it.Value()) != types.WordLen {
			return errCorruptWord
		}
		copy(value[:], it.Value())
		if !f(slot, value) {
			break
		}
	}
	return it.Error()
}

func (s *accountState) ClearCache() {
	s.codeCache.Flush()
}

func (s *accountState) getWord(prefix types.KeyPrefix, address types.Address) (*uint256.Int, error) {
	key := types.AddressKey(prefix, address)
	word, err := s.getRawWord(key[:])
	if err != nil {
		return nil, err
	}
	return word.Int(), nil
}

func (s *accountState) putWord(prefix types.KeyPrefix, address types.Address, value *uint256.Int) error {
	key := types.AddressKey(prefix, address)
	word := types.U256ToBytes(value)
	return s.db.Put(key[:], word[:])
}

func (s *accountState) getRawWord(key []byte) (types.Word, error) {
	var word types.Word
	raw, err := s.db.Get(key)
	switch {
	case err == database.ErrNotFound:
		return word, nil
	case err != nil:
		return word, err
	case len(raw) != types.WordLen:
		return word, errCorruptWord
	}
	copy(word[:], raw)
	return word, nil
}
