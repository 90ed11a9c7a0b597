package cmd

import (
	"fmt"

	"github.com/rustyeddy/simbot/config"
	"github.com/rustyeddy/simbot/journal"
	"github.com/rustyeddy/simbot/sim"
	"github.com/rustyeddy/simbot/strategies"
)

// loadConfig reads the config file, or returns the defaults when no path
// is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}

// newJournal builds the journal the config asks for. The caller owns Close.
func newJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.PortfolioFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	default:
		return journal.Nop{}, nil
	}
}

// sessionOptions maps the file configuration onto engine options.
func sessionOptions(cfg *config.Config, j journal.Journal) (sim.Options, error) {
	interval, err := cfg.Simulation.ParseTickInterval()
	if err != nil {
		return sim.Options{}, err
	}

	strat, err := strategies.Lookup(cfg.Strategy.Name)
	if err != nil {
		return sim.Options{}, err
	}
	if cfg.Strategy.Name == "rules" {
		strat = strategies.NewRules(&strategies.RulesConfig{
			RSIOversold:   cfg.Strategy.RSIOversold,
			RSIOverbought: cfg.Strategy.RSIOverbought,
		})
	}

	return sim.Options{
		Symbols:        cfg.Market.Symbols,
		Balance:        cfg.Account.Balance,
		SizingCap:      cfg.Simulation.SizingCap,
		NoiseStdDev:    cfg.Market.NoiseStdDev,
		WindowCapacity: cfg.Market.WindowCapacity,
		InitPriceMin:   cfg.Market.InitPriceMin,
		InitPriceMax:   cfg.Market.InitPriceMax,
		TickInterval:   interval,
		EvalEvery:      cfg.Simulation.EvalEvery,
		Seed:           cfg.Simulation.Seed,
		Strategy:       strat,
		Journal:        j,
	}, nil
}

func newSession(cfg *config.Config, j journal.Journal) (*sim.Session, error) {
	opt, err := sessionOptions(cfg, j)
	if err != nil {
		return nil, err
	}
	sess, err := sim.NewSession(opt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}
