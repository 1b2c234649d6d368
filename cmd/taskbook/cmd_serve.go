package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v3"

	"github.com/rpggio/taskbook/internal/mcp"
)

func newServeCmd(current func() *app) *cli.Command {
	var (
		transport string
		host      string
		port      int
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the add_task tool over MCP",
		Description: `Runs an MCP server exposing add_task.

The stdio transport keeps stdout for protocol traffic; logs go to stderr.

Examples:
  taskbook serve
  taskbook serve --transport http --host 0.0.0.0 --port 9000`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "transport",
				Usage:       "stdio or http",
				Value:       "stdio",
				Sources:     cli.EnvVars("TASKBOOK_TRANSPORT"),
				Destination: &transport,
			},
			&cli.StringFlag{
				Name:        "host",
				Usage:       "HTTP listen host (defaults to server.host)",
				Destination: &host,
			},
			&cli.IntFlag{
				Name:        "port",
				Usage:       "HTTP listen port (defaults to server.port)",
				Destination: &port,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a := current()
			server := mcp.NewServer(mcp.Config{
				Tasks:   a.tasks,
				Version: version,
				Logger:  a.logger.With("component", "mcp"),
			})

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			switch transport {
			case "stdio":
				return runStdio(ctx, a.logger, server)
			case "http":
				if host == "" {
					host = a.cfg.Server.Host
				}
				if port == 0 {
					port = a.cfg.Server.Port
				}
				return runHTTP(ctx, a.logger, server, fmt.Sprintf("%s:%d", host, port))
			default:
				return fmt.Errorf("unknown transport %q (want stdio or http)", transport)
			}
		},
	}
}

func runStdio(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server) error {
	logger.Info("starting stdio transport")
	// Run blocks until stdin closes or ctx is canceled.
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mcp.NewHTTPHandler(server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
