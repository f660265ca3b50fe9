package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/loopwork-ai/mcpfunc/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mcpfunc",
	Short: "A local harness for mcpfunc tool functions",
	Long: `mcpfunc hosts a sample function app built with the mcpfunc adapter.
It registers the sample tools, serves the host's custom-handler invocation
endpoint, and can print the trigger bindings a host registration call would
receive.

Use --bindings to inspect the derived tool schemas without serving.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		if !verbose {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if address != "" {
			cfg.Address = address
		}

		app, err := buildApp(cfg, logger)
		if err != nil {
			return fmt.Errorf("error building function app: %w", err)
		}

		if printBindings {
			bindings, err := app.Bindings()
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(bindings)
		}

		server := &http.Server{
			Addr:    cfg.Address,
			Handler: app.Handler(),
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("serving custom handler", "address", cfg.Address)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

var (
	configPath    string
	address       string
	verbose       bool
	printBindings bool

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&address, "address", "", "Listen address (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.Flags().BoolVar(&printBindings, "bindings", false, "Print trigger bindings as JSON and exit")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
