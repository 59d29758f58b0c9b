// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/evmbridge/json"
)

const (
	versionKey        = "version"
	logLevelKey       = "log-level"
	httpHostKey       = "http-host"
	httpPortKey       = "http-port"
	maxDepthKey       = "max-depth"
	deriveKey         = "derive"
	storageAddressKey = "storage-address"
	storageSlotKey    = "storage-slot"

	envPrefix = "evmbridge"
)

var errMissingSlot = errors.New("--storage-address requires --storage-slot")

// Config is the resolved configuration of the binary.
type Config struct {
	Version  bool
	LogLevel string
	HTTPHost string
	HTTPPort uint16
	MaxDepth int

	// Derive, if set, prints the address of this account identifier and
	// exits.
	Derive string
	// StorageAddress and StorageSlot, if set, print a storage key and exit.
	StorageAddress string
	StorageSlot    string
}

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("evmbridge", flag.ContinueOnError)

	fs.Bool(versionKey, false, "If true, prints version and quit")
	fs.String(logLevelKey, "info", "Log level (crit, error, warn, info, debug)")
	fs.String(httpHostKey, "127.0.0.1", "Address the RPC server listens on")
	fs.Uint(httpPortKey, 9660, "Port the RPC server listens on")
	fs.Int(maxDepthKey, json.DefaultMaxDepth, "Deepest nesting accepted in decoded documents")
	fs.String(deriveKey, "", "Print the address derived from this account identifier and quit")
	fs.String(storageAddressKey, "", "Print the storage key of this hex address and --storage-slot, then quit")
	fs.String(storageSlotKey, "", "Hex storage slot used with --storage-address")

	return fs
}

// getViper returns the viper environment for the binary. Flags may also be
// set through EVMBRIDGE_ prefixed environment variables.
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("evmbridge", pflag.ContinueOnError)
	fs.AddGoFlagSet(buildFlagSet())
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return v, nil
}

func getConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Version:        v.GetBool(versionKey),
		LogLevel:       v.GetString(logLevelKey),
		HTTPHost:       v.GetString(httpHostKey),
		HTTPPort:       uint16(v.GetUint(httpPortKey)),
		MaxDepth:       v.GetInt(maxDepthKey),
		Derive:         v.GetString(deriveKey),
		StorageAddress: v.GetString(storageAddressKey),
		StorageSlot:    v.GetString(storageSlotKey),
	}
	if config.StorageAddress != "" && config.StorageSlot == "" {
		return Config{}, errMissingSlot
	}
	return config, nil
}
