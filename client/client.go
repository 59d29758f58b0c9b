// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/rpc/v2/json2"

	"github.com/ava-labs/evmbridge/service"
	"github.com/ava-labs/evmbridge/types"
)

// Client defines evmbridge static service operations.
type Client interface {
	// DeriveAddress returns the address of an account identifier
	DeriveAddress(ctx context.Context, accountID string) (types.Address, error)

	// AddressKey returns the store key of an account field
	AddressKey(ctx context.Context, prefix types.KeyPrefix, address types.Address) (string, error)

	// StorageKey returns the store key of a storage slot
	StorageKey(ctx context.Context, address types.Address, slot types.Hash) (string, error)

	// Extract decodes [document] and returns the field [key] as [kind]
	Extract(ctx context.Context, document []byte, key string, kind string) (string, error)
}

// New creates a new client object for the service served at [uri].
func New(uri string) Client {
	return &client{
		uri:  uri,
		http: http.DefaultClient,
	}
}

type client struct {
	uri  string
	http *http.Client
}

func (cli *client) DeriveAddress(ctx context.Context, accountID string) (types.Address, error) {
	resp := new(service.DeriveAddressReply)
	err := cli.sendRequest(ctx,
		"deriveAddress",
		&service.DeriveAddressArgs{AccountID: accountID},
		resp,
	)
	if err != nil {
		return types.Address{}, err
	}
	return types.HexToAddress(resp.Address)
}

func (cli *client) AddressKey(ctx context.Context, prefix types.KeyPrefix, address types.Address) (string, error) {
	resp := new(service.KeyReply)
	err := cli.sendRequest(ctx,
		"addressKey",
		&service.AddressKeyArgs{Prefix: uint8(prefix), Address: address.String()},
		resp,
	)
	return resp.Key, err
}

func (cli *client) StorageKey(ctx context.Context, address types.Address, slot types.Hash) (string, error) {
	resp := new(service.KeyReply)
	err := cli.sendRequest(ctx,
		"storageKey",
		&service.StorageKeyArgs{Address: address.String(), Slot: slot.String()},
		resp,
	)
	return resp.Key, err
}

func (cli *client) Extract(ctx context.Context, document []byte, key string, kind string) (string, error) {
	resp := new(service.ExtractReply)
	err := cli.sendRequest(ctx,
		"extract",
		&service.ExtractArgs{Document: string(document), Key: key, Kind: kind},
		resp,
	)
	return resp.Value, err
}

func (cli *client) sendRequest(ctx context.Context, method string, args interface{}, reply interface{}) error {
	body, err := json2.EncodeClientRequest(service.Name+"."+method, args)
	if err != nil {
		return fmt.Errorf("couldn't encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cli.uri, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cli.http.Do(req)
	if err != nil {
		return fmt.Errorf("couldn't send request: %w", err)
	}
	defer resp.Body.Close()

	return json2.DecodeClientResponse(resp.Body, reply)
}
