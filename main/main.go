// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"

	"github.com/ava-labs/evmbridge/service"
	"github.com/ava-labs/evmbridge/state"
	"github.com/ava-labs/evmbridge/types"
)

const (
	Name    = "evmbridge"
	Version = "v1.0.0"

	shutdownTimeout = 5 * time.Second
	stateEndpoint   = "/state"
)

func main() {
	v, err := getViper(os.Args[1:])
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	config, err := getConfig(v)
	if err != nil {
		fmt.Printf("couldn't get config: %s\n", err)
		os.Exit(1)
	}
	// Print version and exit
	if config.Version {
		fmt.Printf("%s@%s\n", Name, Version)
		os.Exit(0)
	}

	lvl, err := log.LvlFromString(config.LogLevel)
	if err != nil {
		fmt.Printf("couldn't parse log level: %s\n", err)
		os.Exit(1)
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	if err := run(config, os.Stdout); err != nil {
		log.Error("evmbridge exited with an error", "err", err)
		os.Exit(1)
	}
}

// run executes the one-shot operation selected by [config], or serves the
// RPC API until interrupted.
func run(config Config, out io.Writer) error {
	switch {
	case config.Derive != "":
		address := types.AccountToAddress([]byte(config.Derive))
		_, err := fmt.Fprintln(out, address)
		return err
	case config.StorageAddress != "":
		address, err := types.HexToAddress(config.StorageAddress)
		if err != nil {
			return fmt.Errorf("couldn't parse address: %w", err)
		}
		slot, err := types.HexToHash(config.StorageSlot)
		if err != nil {
			return fmt.Errorf("couldn't parse slot: %w", err)
		}
		key := types.StorageKey(address, slot)
		_, err = fmt.Fprintln(out, types.BytesToHex(key[:]))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, config)
}

// openState wraps [db], refusing databases stamped with another layout, and
// stamps it with the current one.
func openState(db database.Database) (state.State, error) {
	st := state.NewState(db, state.Config{}, log.New("module", "state"))
	if err := st.CheckLayout(); err != nil {
		_ = st.Close()
		return nil, err
	}
	if err := st.SetInitialized(); err != nil {
		_ = st.Close()
		return nil, err
	}
	if err := st.Commit(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func serve(ctx context.Context, config Config) error {
	logger := log.New("module", "rpc")
	staticHandler, err := service.NewHandler(service.CreateStaticService(logger, config.MaxDepth))
	if err != nil {
		return fmt.Errorf("couldn't create handler: %w", err)
	}

	// The state endpoint is a scratch store for inspecting key layouts; it
	// does not outlive the process.
	st, err := openState(memdb.New())
	if err != nil {
		return fmt.Errorf("couldn't open state: %w", err)
	}
	defer st.Close()
	stateHandler, err := service.NewStateHandler(service.NewStateService(logger, st))
	if err != nil {
		return fmt.Errorf("couldn't create state handler: %w", err)
	}

	handler := http.NewServeMux()
	handler.Handle(stateEndpoint, stateHandler)
	handler.Handle("/", staticHandler)

	addr := net.JoinHostPort(config.HTTPHost, strconv.Itoa(int(config.HTTPPort)))
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving RPC", "addr", addr, "version", Version)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down RPC server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
