package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
	"github.com/CinderZhang/financialdatasets-docs/internal/container"
	"github.com/CinderZhang/financialdatasets-docs/internal/mcp"
)

var (
	serveHTTPAddr string
	serveVerbose  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio (and optionally HTTP)",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "Also serve MCP over HTTP on this address, e.g. :8080")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Verbose logging")
}

func runServe(_ *cobra.Command, _ []string) error {
	setupLogging(serveVerbose)

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Resolve(); err != nil {
		return err
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	server := c.Server()

	g.Go(func() error {
		// Stdin EOF means the client hung up; take the HTTP transport down too.
		defer cancel()
		return mcp.ServeStdio(gctx, server, os.Stdin, os.Stdout)
	})

	httpAddr := serveHTTPAddr
	if httpAddr == "" {
		httpAddr = cfg.Server.HTTPAddr
	}
	if httpAddr != "" {
		transport := mcp.NewHTTPTransport(server)
		g.Go(func() error { return transport.Start(gctx, httpAddr) })
	}

	slog.Info("findata-mcp serving", "version", version, "tools", c.Registry().Len())

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// setupLogging installs the global handler. Everything logs to stderr:
// stdout carries the stdio transport.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
