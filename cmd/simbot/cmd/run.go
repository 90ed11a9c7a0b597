package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/simbot/sim"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run a simulation for a fixed number of ticks without a server and
print the final account summary.

With --seed the whole run (price noise and trade sizing) is reproducible.

Example:
  simbot run --ticks 5000 --seed 42
  simbot run --config simulation.yaml --ticks 1000`,
	RunE: runRun,
}

var (
	runConfigPath string
	runTicks      int
	runSeed       int64
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML or JSON)")
	runCmd.Flags().IntVarP(&runTicks, "ticks", "n", 1000, "number of ticks to simulate")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 = seed from clock)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if runSeed != 0 {
		cfg.Simulation.Seed = runSeed
	}
	if runTicks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", runTicks)
	}

	j, err := newJournal(cfg)
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	defer j.Close()

	session, err := newSession(cfg, j)
	if err != nil {
		return err
	}

	fmt.Printf("Simulating %d ticks (%d symbols, evaluation every %d ticks)\n\n",
		runTicks, len(cfg.Market.Symbols), cfg.Simulation.EvalEvery)

	for i := 0; i < runTicks; i++ {
		res, err := session.Tick()
		if err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
		for _, rec := range res.Trades {
			fmt.Printf("[%s] %-4s %d %-6s @ $%.2f %s\n",
				rec.Time.Format("15:04:05"), rec.Side, rec.Quantity, rec.Symbol, rec.Price, rec.Status)
		}
	}

	acct := session.Account()
	executed, rejected := 0, 0
	realized := 0.0
	for _, rec := range acct.Trades {
		if rec.Status == sim.StatusExecuted {
			executed++
			realized += rec.RealizedPL
		} else {
			rejected++
		}
	}

	fmt.Printf("\nFinal Results:\n")
	fmt.Printf("  Balance: $%.2f\n", acct.Balance)
	fmt.Printf("  Realized P&L: $%.2f\n", realized)
	fmt.Printf("  Trades: %d executed, %d rejected\n", executed, rejected)
	for _, sym := range cfg.Market.Symbols {
		pos := acct.Position(sym)
		if pos.Shares > 0 {
			fmt.Printf("  %s: %d shares @ $%.2f\n", sym, pos.Shares, pos.AvgCost)
		}
	}
	return nil
}
