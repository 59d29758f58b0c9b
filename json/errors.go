// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

// ErrorKind enumerates every way extraction from a Value can fail.
type ErrorKind uint8

const (
	NotJSONType ErrorKind = iota
	MissingValue
	InvalidU8
	InvalidU64
	InvalidU128
	InvalidBool
	InvalidString
	InvalidArray
	ExpectedStringGotNumber
	OutOfRange
)

// OutOfRangeKind refines OutOfRange errors.
type OutOfRangeKind uint8

const (
	NotOutOfRange OutOfRangeKind = iota
	OutOfRangeU8
	OutOfRangeU128
)

// Diagnostic payloads returned to external callers. These are part of the
// public interface and must not change.
var (
	payloadNotJSONType             = []byte("ERR_NOT_A_JSON_TYPE")
	payloadMissingValue            = []byte("ERR_JSON_MISSING_VALUE")
	payloadInvalidU8               = []byte("ERR_FAILED_PARSE_U8")
	payloadInvalidU64              = []byte("ERR_FAILED_PARSE_U64")
	payloadInvalidU128             = []byte("ERR_FAILED_PARSE_U128")
	payloadInvalidBool             = []byte("ERR_FAILED_PARSE_BOOL")
	payloadInvalidString           = []byte("ERR_FAILED_PARSE_STRING")
	payloadInvalidArray            = []byte("ERR_FAILED_PARSE_ARRAY")
	payloadExpectedStringGotNumber = []byte("ERR_EXPECTED_STRING_GOT_NUMBER")
	payloadOutOfRangeU8            = []byte("ERR_OUT_OF_RANGE_U8")
	payloadOutOfRangeU128          = []byte("ERR_OUT_OF_RANGE_U128")
	payloadUnknown                 = []byte("ERR_UNKNOWN_JSON_ERROR")
)

var (
	ErrNotJSONType             error = Error{Kind: NotJSONType}
	ErrMissingValue            error = Error{Kind: MissingValue}
	ErrInvalidU8               error = Error{Kind: InvalidU8}
	ErrInvalidU64              error = Error{Kind: InvalidU64}
	ErrInvalidU128             error = Error{Kind: InvalidU128}
	ErrInvalidBool             error = Error{Kind: InvalidBool}
	ErrInvalidString           error = Error{Kind: InvalidString}
	ErrInvalidArray            error = Error{Kind: InvalidArray}
	ErrExpectedStringGotNumber error = Error{Kind: ExpectedStringGotNumber}
	ErrOutOfRangeU8            error = Error{Kind: OutOfRange, Range: OutOfRangeU8}
	ErrOutOfRangeU128          error = Error{Kind: OutOfRange, Range: OutOfRangeU128}
)

// Error is an extraction failure. Errors are comparable, so the Err*
// values above work with == and errors.Is.
type Error struct {
	Kind  ErrorKind
	Range OutOfRangeKind
}

func (e Error) Error() string {
	return string(e.Payload())
}

// Payload returns the fixed diagnostic bytes for [e]. The returned slice is
// shared and must not be modified.
func (e Error) Payload() []byte {
	switch e.Kind {
	case NotJSONType:
		return payloadNotJSONType
	case MissingValue:
		return payloadMissingValue
	case InvalidU8:
		return payloadInvalidU8
	case InvalidU64:
		return payloadInvalidU64
	case InvalidU128:
		return payloadInvalidU128
	case InvalidBool:
		return payloadInvalidBool
	case InvalidString:
		return payloadInvalidString
	case InvalidArray:
		return payloadInvalidArray
	case ExpectedStringGotNumber:
		return payloadExpectedStringGotNumber
	case OutOfRange:
		switch e.Range {
		case OutOfRangeU8:
			return payloadOutOfRangeU8
		case OutOfRangeU128:
			return payloadOutOfRangeU128
		}
	}
	return payloadUnknown
}
