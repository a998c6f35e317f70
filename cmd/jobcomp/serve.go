package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [positions-file]",
		Short: "Serve the calculator as a JSON HTTP API",
		Long: `Start the HTTP API. Without a positions file only inline positions are
accepted; /v1/compare needs one.

Endpoints: POST /v1/net, /v1/gross, /v1/full, /v1/compare; GET /v1/rates, /healthz`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			var catalog *domain.Catalog
			if len(args) == 1 {
				if catalog, err = a.parser.LoadCatalog(args[0]); err != nil {
					return err
				}
			}

			addr := a.settings.Addr
			if v, _ := cmd.Flags().GetString("addr"); v != "" {
				addr = v
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.engine, catalog, a.logger).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default: $JOBCOMP_ADDR or :8080)")
	return cmd
}
