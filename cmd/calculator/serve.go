package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, env "+config.EnvAddr+")")
	return cmd
}

// serve runs the API server until ctx is done.
func (a *app) serve(ctx context.Context, addr string) error {
	srv := server.New(a.log)
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		a.log.Info().Msg("shutting down")
		if err := srv.Shutdown(); err != nil {
			a.log.Error().Err(err).Msg("shutdown failed")
		}
	}()
	err := srv.Listen(addr)
	if ctx.Err() != nil {
		<-done
		return nil
	}
	return err
}
