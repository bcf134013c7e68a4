// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/dropindemo/internal/logging"
	"github.com/toeirei/dropindemo/internal/merchant"
)

const shutdownTimeout = 5 * time.Second

// newServeCmd runs the demo merchant server until interrupted.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo merchant server",
		Long: `Runs the merchant server the demo talks to. It creates customers,
issues client tokens and records transactions for fake nonces in the
configured database (sqlite, postgres or mysql).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			amount, _ := cmd.Flags().GetString("amount")
			return serve(ctx, cmd, amount)
		},
	}
	cmd.Flags().String("server.addr", "localhost:9090", "Listen address")
	cmd.Flags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	cmd.Flags().String("database.dsn", "./dropin-demo.db", "Database connection string (DSN)")
	cmd.Flags().String("environment", "sandbox", "Environment embedded in issued client tokens")
	cmd.Flags().String("amount", merchant.DefaultAmount, "Amount charged per transaction")
	return cmd
}

// serve blocks until ctx is done, then drains the server.
func serve(ctx context.Context, cmd *cobra.Command, amount string) error {
	store, err := merchant.OpenStore(ctx, appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return fmt.Errorf("open %s store: %w", appConfig.Database.Type, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warnf("close store: %v", err)
		}
	}()

	srv := merchant.NewServer(merchant.ServerConfig{
		Addr:        appConfig.Server.Addr,
		Environment: appConfig.Environment,
		Amount:      amount,
	}, store)
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "merchant server listening on http://%s\n", srv.Addr)

	<-ctx.Done()
	logging.Infof("shutting down merchant server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
