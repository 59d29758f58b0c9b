// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"net/http"

	"github.com/gorilla/rpc/v2"

	cjson "github.com/ava-labs/avalanchego/utils/json"
)

// Name is the RPC namespace of the static service.
const Name = "evmbridge"

// NewHandler serves [ss] over JSON-RPC 2.0. Method names are
// case-insensitive in their first letter, e.g. evmbridge.deriveAddress.
func NewHandler(ss *StaticService) (http.Handler, error) {
	return newServer(ss, Name)
}

// NewStateHandler serves [s] over JSON-RPC 2.0 under StateName.
func NewStateHandler(s *StateService) (http.Handler, error) {
	return newServer(s, StateName)
}

func newServer(receiver interface{}, name string) (*rpc.Server, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")

	if err := server.RegisterService(receiver, name); err != nil {
		return nil, err
	}
	return server, nil
}
