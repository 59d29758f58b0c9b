// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/database/prefixdb"

	"github.com/ava-labs/evmbridge/json"
	"github.com/ava-labs/evmbridge/state"
	"github.com/ava-labs/evmbridge/types"
)

func TestDefaults(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	v, err := getViper(nil)
	require.NoError(err)
	config, err := getConfig(v)
	require.NoError(err)

	assert.False(config.Version)
	assert.Equal("info", config.LogLevel)
	assert.Equal("127.0.0.1", config.HTTPHost)
	assert.Equal(uint16(9660), config.HTTPPort)
	assert.Equal(json.DefaultMaxDepth, config.MaxDepth)
}

func TestFlags(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	v, err := getViper([]string{"--http-port=8080", "--max-depth=8", "--derive=alice.near"})
	require.NoError(err)
	config, err := getConfig(v)
	require.NoError(err)
	assert.Equal(uint16(8080), config.HTTPPort)
	assert.Equal(8, config.MaxDepth)
	assert.Equal("alice.near", config.Derive)

	_, err = getViper([]string{"--no-such-flag"})
	assert.Error(err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("EVMBRIDGE_LOG_LEVEL", "debug")

	v, err := getViper(nil)
	require.NoError(t, err)
	config, err := getConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestStorageKeyRequiresSlot(t *testing.T) {
	v, err := getViper([]string{"--storage-address=0x0000000000000000000000000000000000000001"})
	require.NoError(t, err)
	_, err = getConfig(v)
	assert.ErrorIs(t, err, errMissingSlot)
}

func TestRunOneShot(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	assert.NoError(run(Config{Derive: "alice.near"}, &out))
	assert.Equal(types.AccountToAddress([]byte("alice.near")).String()+"\n", out.String())

	out.Reset()
	assert.NoError(run(Config{
		StorageAddress: "0x0000000000000000000000000000000000000001",
		StorageSlot:    "0x0000000000000000000000000000000000000000000000000000000000000002",
	}, &out))
	assert.Equal("04"+"0000000000000000000000000000000000000001"+
		"0000000000000000000000000000000000000000000000000000000000000002\n", out.String())

	assert.Error(run(Config{StorageAddress: "0x01", StorageSlot: "0x02"}, &out))
}

func TestOpenState(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	db := memdb.New()
	st, err := openState(db)
	require.NoError(err)
	initialized, err := st.IsInitialized()
	require.NoError(err)
	assert.True(initialized)

	// the stamp was committed to [db]
	_, err = openState(db)
	assert.NoError(err)

	stale := memdb.New()
	require.NoError(prefixdb.New([]byte("meta"), stale).Put([]byte{0}, []byte{state.LayoutVersion + 1}))
	_, err = openState(stale)
	assert.Error(err)
}
