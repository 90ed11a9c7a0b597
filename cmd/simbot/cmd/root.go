package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simbot",
	Short: "A simulated market feed with a rule-based trading bot",
	Long: `Simbot simulates a market feed and a rule-based trading agent that
reacts to it, streaming every state change to observers.

It provides tools for:
  - Serving a live dashboard over WebSocket, one engine session per viewer
  - Running headless simulations with reproducible seeds
  - Technical indicators (RSI, MACD, EMA, Bollinger bands) over a rolling window
  - A cash ledger with weighted-average cost basis and realized P&L
  - Journaling trades and the equity curve to CSV or SQLite`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
