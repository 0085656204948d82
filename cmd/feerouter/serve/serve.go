// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serve implements the "serve" command.
package serve

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/feerouter/chain"
	"github.com/ava-labs/feerouter/config"
	"github.com/ava-labs/feerouter/service"
)

const (
	configFileKey   = "config-file"
	shutdownTimeout = 5 * time.Second
)

// NewCommand implements "feerouter serve" command.
func NewCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "serve [options]",
		Short: "Serves the payment processor",
		Long: `
Loads the genesis allocations and serves the router over JSON-RPC.
Every flag may also be set in the config file or through a
FEEROUTER_ prefixed environment variable.

$ feerouter serve --http-port 9650 --genesis-file allocations.json

`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveFunc(cmd.Context(), v)
		},
	}

	fs := cmd.Flags()
	fs.String(configFileKey, "", "config file path")
	fs.String(config.HTTPHostKey, "", "HTTP listen host")
	fs.Uint16(config.HTTPPortKey, 0, "HTTP listen port")
	fs.Duration(config.ReadTimeoutKey, 0, "HTTP read timeout")
	fs.String(config.LogLevelKey, "", "log level (debug, info, warn, error)")
	fs.String(config.LogFormatKey, "", "log format (logfmt, json, terminal)")
	fs.String(config.GenesisFileKey, "", "JSON file of initial token allocations")

	// only flags the user set override the config file and defaults
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		fs.Visit(func(f *pflag.Flag) {
			if err == nil {
				err = v.BindPFlag(f.Name, f)
			}
		})
		return err
	}
	return cmd
}

func serveFunc(ctx context.Context, v *viper.Viper) error {
	if p := v.GetString(configFileKey); len(p) > 0 {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	h, err := c.LogHandler()
	if err != nil {
		return err
	}
	log.Root().SetHandler(h)

	g := chain.DefaultGenesis()
	if len(c.GenesisFile) > 0 {
		b, err := os.ReadFile(c.GenesisFile)
		if err != nil {
			return err
		}
		allocs, err := chain.ParseAllocations(b)
		if err != nil {
			return err
		}
		g.Allocations = allocs
	}

	db := memdb.New()
	defer db.Close()
	p := chain.NewProcessor(g, db, nil)
	if err := p.Initialize(); err != nil {
		return err
	}

	handler, err := service.NewHandler(p)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(service.PublicEndpoint, handler)
	srv := &http.Server{
		Addr:        c.Addr(),
		Handler:     mux,
		ReadTimeout: c.ReadTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("serving", "addr", srv.Addr, "endpoint", service.PublicEndpoint)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
