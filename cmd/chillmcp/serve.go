package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/chillmcp"
	"github.com/aretw0/chillmcp/internal/config"
	"github.com/aretw0/chillmcp/internal/logging"
	"github.com/aretw0/chillmcp/internal/metrics"
	mcpadapter "github.com/aretw0/chillmcp/pkg/adapters/mcp"
	"github.com/aretw0/chillmcp/pkg/breaks"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ChillMCP server",
	Long: `Starts the break-room engine as an MCP Server.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local agent integration.
- sse: Uses Server-Sent Events over HTTP, with /healthz and /metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		return runServe(cmd, transport, port)
	},
}

func runServe(cmd *cobra.Command, transport string, port int) error {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	logger := logging.New(level)
	slog.SetDefault(logger)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	catalogPath, _ := cmd.Flags().GetString("catalog")
	catalog, err := breaks.Load(catalogPath)
	if err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	engine, err := chillmcp.New(
		chillmcp.WithBossAlertness(cfg.BossAlertness),
		chillmcp.WithCooldown(cfg.Cooldown()),
		chillmcp.WithCatalog(catalog),
		chillmcp.WithLogger(logger),
		chillmcp.WithHooks(m.Hooks()),
	)
	if err != nil {
		return err
	}

	srv := mcpadapter.NewServer(engine, mcpadapter.WithLogger(logger))

	switch transport {
	case "stdio":
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting ChillMCP server (Stdio)",
			"boss_alertness", cfg.BossAlertness,
			"boss_alertness_cooldown", cfg.Cooldown(),
		)
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	case "sse":
		logger.Info("Starting ChillMCP server (SSE)", "port", port)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.ServeSSE(ctx, port); err != nil {
			if err != http.ErrServerClosed {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		}
		logger.Info("MCP server stopped gracefully")
	default:
		return fmt.Errorf("unknown transport: %s (supported: stdio, sse)", transport)
	}
	return nil
}

// resolveConfig layers env vars over defaults, then explicit flags over env,
// and fails fast on out-of-range values.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("boss_alertness") {
		cfg.BossAlertness, _ = cmd.Flags().GetInt("boss_alertness")
	}
	if cmd.Flags().Changed("boss_alertness_cooldown") {
		cfg.BossAlertnessCooldownSeconds, _ = cmd.Flags().GetInt("boss_alertness_cooldown")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
