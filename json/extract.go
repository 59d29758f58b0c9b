// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"math"

	"github.com/holiman/uint256"
)

var (
	ten = uint256.NewInt(10)

	// magnitude of the smallest signed 128-bit integer, 2^127
	minI128Magnitude = new(uint256.Int).Lsh(uint256.NewInt(1), 127)
)

// GetString returns the Text member [key] of [v].
func GetString(v Value, key string) (string, error) {
	field, err := v.Field(key)
	if err != nil {
		return "", err
	}
	s, ok := field.(Text)
	if !ok {
		return "", ErrInvalidString
	}
	return string(s), nil
}

// GetU64 returns the UnsignedInt member [key] of [v].
func GetU64(v Value, key string) (uint64, error) {
	field, err := v.Field(key)
	if err != nil {
		return 0, err
	}
	n, ok := field.(UnsignedInt)
	if !ok {
		return 0, ErrInvalidU64
	}
	return uint64(n), nil
}

// GetBool returns the Bool member [key] of [v].
func GetBool(v Value, key string) (bool, error) {
	field, err := v.Field(key)
	if err != nil {
		return false, err
	}
	b, ok := field.(Bool)
	if !ok {
		return false, ErrInvalidBool
	}
	return bool(b), nil
}

// GetArray returns the Sequence member [key] of [v].
func GetArray(v Value, key string) (Sequence, error) {
	field, err := v.Field(key)
	if err != nil {
		return nil, err
	}
	seq, ok := field.(Sequence)
	if !ok {
		return nil, ErrInvalidArray
	}
	return seq, nil
}

// GetU8 returns the member [key] of [v] as a byte. See ParseU8.
func GetU8(v Value, key string) (uint8, error) {
	field, err := v.Field(key)
	if err != nil {
		return 0, err
	}
	return ParseU8(field)
}

// GetU128 returns the member [key] of [v] as an unsigned 128-bit integer.
// See ParseU128.
func GetU128(v Value, key string) (*uint256.Int, error) {
	field, err := v.Field(key)
	if err != nil {
		return nil, err
	}
	return ParseU128(field)
}

// ParseU8 accepts only an UnsignedInt no larger than 255.
func ParseU8(v Value) (uint8, error) {
	n, ok := v.(UnsignedInt)
	if !ok {
		return 0, ErrInvalidU8
	}
	if n > math.MaxUint8 {
		return 0, ErrOutOfRangeU8
	}
	return uint8(n), nil
}

// ParseU128 accepts only Text holding a base-10 integer. Numeric literals
// are refused with ErrExpectedStringGotNumber since they cannot carry 128
// bits without loss.
//
// A string that is a valid signed 128-bit integer but not a valid unsigned
// one (a negative number) yields ErrOutOfRangeU128. Anything else that does
// not parse yields ErrInvalidU128. The result always fits in 128 bits.
func ParseU128(v Value) (*uint256.Int, error) {
	switch v := v.(type) {
	case Text:
		return parseU128(string(v))
	case Float, SignedInt, UnsignedInt:
		return nil, ErrExpectedStringGotNumber
	default:
		return nil, ErrInvalidU128
	}
}

func parseU128(s string) (*uint256.Int, error) {
	negative := false
	digits := s
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		negative = digits[0] == '-'
		digits = digits[1:]
	}
	magnitude, ok := parseDecimal(digits)
	if !ok {
		return nil, ErrInvalidU128
	}
	if !negative && magnitude.BitLen() <= 128 {
		return magnitude, nil
	}
	if negative && magnitude.Cmp(minI128Magnitude) <= 0 {
		return nil, ErrOutOfRangeU128
	}
	// non-negative values above the unsigned range are above the signed
	// range too
	return nil, ErrInvalidU128
}

// parseDecimal parses a non-empty run of ASCII digits that fits in 256 bits.
func parseDecimal(digits string) (*uint256.Int, bool) {
	if len(digits) == 0 {
		return nil, false
	}
	var (
		z     = new(uint256.Int)
		digit = new(uint256.Int)
	)
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		if _, overflow := z.MulOverflow(z, ten); overflow {
			return nil, false
		}
		digit.SetUint64(uint64(c - '0'))
		if _, overflow := z.AddOverflow(z, digit); overflow {
			return nil, false
		}
	}
	return z, true
}
