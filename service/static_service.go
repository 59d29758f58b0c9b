// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/holiman/uint256"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/utils/formatting"

	"github.com/ava-labs/evmbridge/json"
	"github.com/ava-labs/evmbridge/types"
)

var (
	errMalformedDocument = errors.New("document is not well-formed")
	errUnknownKind       = errors.New("unknown field kind")
	errUnknownPrefix     = errors.New("unknown key prefix")
)

// StaticService exposes the key encoding and argument decoding primitives.
// It holds no chain state.
type StaticService struct {
	log       log.Logger
	parseOpts json.ParseOptions
	hasher    types.Hasher
}

// CreateStaticService ...
func CreateStaticService(logger log.Logger, maxDepth int) *StaticService {
	return &StaticService{
		log:       logger,
		parseOpts: json.ParseOptions{MaxDepth: maxDepth},
		hasher:    types.DefaultHasher,
	}
}

// DeriveAddressArgs are arguments for DeriveAddress
type DeriveAddressArgs struct {
	AccountID string `json:"accountID"`
}

// DeriveAddressReply is the reply from DeriveAddress
type DeriveAddressReply struct {
	Address string `json:"address"`
}

// DeriveAddress returns the address of an account identifier
func (ss *StaticService) DeriveAddress(_ *http.Request, args *DeriveAddressArgs, reply *DeriveAddressReply) error {
	address := types.DeriveAddress(ss.hasher, []byte(args.AccountID))
	reply.Address = address.String()
	return nil
}

// AddressKeyArgs are arguments for AddressKey
type AddressKeyArgs struct {
	Prefix  uint8  `json:"prefix"`
	Address string `json:"address"`
}

// StorageKeyArgs are arguments for StorageKey
type StorageKeyArgs struct {
	Address string `json:"address"`
	Slot    string `json:"slot"`
}

// KeyReply is the reply from AddressKey and StorageKey
type KeyReply struct {
	Key string `json:"key"`
}

// AddressKey returns the store key of an account field
func (ss *StaticService) AddressKey(_ *http.Request, args *AddressKeyArgs, reply *KeyReply) error {
	prefix := types.KeyPrefix(args.Prefix)
	if !prefix.Valid() {
		return errUnknownPrefix
	}
	address, err := types.HexToAddress(args.Address)
	if err != nil {
		return fmt.Errorf("couldn't parse address: %w", err)
	}
	key := types.AddressKey(prefix, address)
	reply.Key = types.BytesToHex(key[:])
	return nil
}

// StorageKey returns the store key of a storage slot
func (ss *StaticService) StorageKey(_ *http.Request, args *StorageKeyArgs, reply *KeyReply) error {
	address, err := types.HexToAddress(args.Address)
	if err != nil {
		return fmt.Errorf("couldn't parse address: %w", err)
	}
	slot, err := types.HexToHash(args.Slot)
	if err != nil {
		return fmt.Errorf("couldn't parse slot: %w", err)
	}
	key := types.StorageKey(address, slot)
	reply.Key = types.BytesToHex(key[:])
	return nil
}

// ExtractArgs are arguments for Extract
type ExtractArgs struct {
	Document string `json:"document"`
	Key      string `json:"key"`
	// Kind is one of string, u8, u64, u128, bool or array
	Kind string `json:"kind"`
}

// ExtractReply is the reply from Extract
type ExtractReply struct {
	Value string `json:"value"`
}

// Extract decodes [args.Document] and returns the field [args.Key] as
// [args.Kind]. Extraction failures are reported with their diagnostic
// payload.
func (ss *StaticService) Extract(_ *http.Request, args *ExtractArgs, reply *ExtractReply) error {
	doc, ok := json.ParseWithOptions([]byte(args.Document), ss.parseOpts)
	if !ok {
		return errMalformedDocument
	}

	var (
		value string
		err   error
	)
	switch args.Kind {
	case "string":
		value, err = json.GetString(doc, args.Key)
	case "u8":
		var n uint8
		n, err = json.GetU8(doc, args.Key)
		value = strconv.FormatUint(uint64(n), 10)
	case "u64":
		var n uint64
		n, err = json.GetU64(doc, args.Key)
		value = strconv.FormatUint(n, 10)
	case "u128":
		var n *uint256.Int
		n, err = json.GetU128(doc, args.Key)
		if err == nil {
			value = n.ToBig().String()
		}
	case "bool":
		var b bool
		b, err = json.GetBool(doc, args.Key)
		value = strconv.FormatBool(b)
	case "array":
		var seq json.Sequence
		seq, err = json.GetArray(doc, args.Key)
		value = seq.String()
	default:
		return errUnknownKind
	}
	if err != nil {
		ss.log.Debug("extraction failed", "key", args.Key, "kind", args.Kind, "err", err)
		return err
	}
	reply.Value = value
	return nil
}

// EncodeLogArgs are arguments for EncodeLog
type EncodeLogArgs struct {
	Topics   []string            `json:"topics"`
	Data     string              `json:"data"`
	Encoding formatting.Encoding `json:"encoding"`
}

// EncodeLogReply is the reply from EncodeLog
type EncodeLogReply struct {
	Bytes    string              `json:"bytes"`
	Encoding formatting.Encoding `json:"encoding"`
}

// EncodeLog returns the wire encoding of a log. [args.Data] and the reply
// bytes use [args.Encoding]; topics are hex.
func (ss *StaticService) EncodeLog(_ *http.Request, args *EncodeLogArgs, reply *EncodeLogReply) error {
	data, err := formatting.Decode(args.Encoding, args.Data)
	if err != nil {
		return fmt.Errorf("couldn't decode data: %w", err)
	}
	l := &types.Log{Data: data}
	for i, topic := range args.Topics {
		h, err := types.HexToHash(topic)
		if err != nil {
			return fmt.Errorf("couldn't parse topic %d: %w", i, err)
		}
		l.Topics = append(l.Topics, h)
	}
	raw, err := types.LogToBytes(l)
	if err != nil {
		return err
	}
	encoded, err := formatting.EncodeWithChecksum(args.Encoding, raw)
	if err != nil {
		return fmt.Errorf("couldn't encode log: %w", err)
	}
	reply.Bytes = encoded
	reply.Encoding = args.Encoding
	return nil
}
