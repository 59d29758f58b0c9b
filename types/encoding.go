// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"errors"
	"math"

	"github.com/holiman/uint256"
)

// MaxLogTopics is the largest topic count representable by the one-byte
// count prefix of an encoded log.
const MaxLogTopics = math.MaxUint8

var ErrTooManyTopics = errors.New("log has more than 255 topics")

// Log is an event emitted during execution.
type Log struct {
	Address Address
	Topics  []Hash
	Data    []byte
}

// U256ToBytes returns the 32-byte big-endian encoding of [value], left padded
// with zeros. A nil value encodes as zero.
func U256ToBytes(value *uint256.Int) Word {
	if value == nil {
		return Word{}
	}
	return value.Bytes32()
}

// LogToBytes encodes [log] as
// [topic count (1 byte)] || topic_0 || ... || topic_n || data.
// The address is not part of the encoding.
func LogToBytes(log *Log) ([]byte, error) {
	if len(log.Topics) > MaxLogTopics {
		return nil, ErrTooManyTopics
	}
	raw := make([]byte, 1+len(log.Topics)*HashLen+len(log.Data))
	raw[0] = byte(len(log.Topics))
	work := raw[1:]
	for _, topic := range log.Topics {
		copy(work, topic[:])
		work = work[HashLen:]
	}
	copy(work, log.Data)
	return raw, nil
}

// BytesToHex renders [b] as lowercase hex with no prefix.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
