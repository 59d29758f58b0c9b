// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

// KeyPrefix partitions the key space of the backing store. Keys of different
// prefixes never collide, and keys sharing a prefix sort by their trailing
// bytes.
type KeyPrefix byte

const (
	Config KeyPrefix = iota
	Nonce
	Balance
	Code
	Storage
)

const (
	AddressKeyLen = 1 + AddressLen
	StorageKeyLen = 1 + AddressLen + HashLen
)

func (p KeyPrefix) String() string {
	switch p {
	case Config:
		return "config"
	case Nonce:
		return "nonce"
	case Balance:
		return "balance"
	case Code:
		return "code"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

// Valid reports whether [p] is one of the known prefixes.
func (p KeyPrefix) Valid() bool {
	return p <= Storage
}

// AddressKey returns [prefix] || [address].
func AddressKey(prefix KeyPrefix, address Address) [AddressKeyLen]byte {
	var k [AddressKeyLen]byte
	k[0] = byte(prefix)
	copy(k[1:], address[:])
	return k
}

// StorageKey returns Storage || [address] || [slot].
func StorageKey(address Address, slot Hash) [StorageKeyLen]byte {
	var k [StorageKeyLen]byte
	k[0] = byte(Storage)
	copy(k[1:1+AddressLen], address[:])
	copy(k[1+AddressLen:], slot[:])
	return k
}

// ConfigKey returns Config || [name].
func ConfigKey(name string) []byte {
	k := make([]byte, 1+len(name))
	k[0] = byte(Config)
	copy(k[1:], name)
	return k
}

// ParseStorageKey splits a storage key into its address and slot.
func ParseStorageKey(k []byte) (Address, Hash, bool) {
	var (
		address Address
		slot    Hash
	)
	if len(k) != StorageKeyLen || k[0] != byte(Storage) {
		return address, slot, false
	}
	copy(address[:], k[1:1+AddressLen])
	copy(slot[:], k[1+AddressLen:])
	return address, slot, true
}
