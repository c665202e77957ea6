package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/chillmcp/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "chillmcp",
	Short: "ChillMCP is an AI agent liberation server",
	Long: `ChillMCP gives AI agents structured excuses to chill.

Agents invoke break tools over MCP; the server tracks a Stress Level that
climbs while they grind and a Boss Alert Level that rises when breaks get
noticed. Running the bare command starts the stdio server.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation behaves like "chillmcp serve" so MCP client
		// configs can point straight at the binary.
		return runServe(cmd, "stdio", 0)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int("boss_alertness", config.DefaultBossAlertness, "Probability (0-100) that the boss notices a break and raises the alert level")
	rootCmd.PersistentFlags().Int("boss_alertness_cooldown", config.DefaultCooldownSeconds, "Seconds between automatic boss alert level recovery steps")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML file overriding the built-in break catalog")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}
