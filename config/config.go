package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete simulation configuration.
type Config struct {
	Account    AccountConfig    `json:"account" yaml:"account"`
	Market     MarketConfig     `json:"market" yaml:"market"`
	Strategy   StrategyConfig   `json:"strategy" yaml:"strategy"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}

// AccountConfig contains account initialization parameters.
type AccountConfig struct {
	Balance float64 `json:"balance" yaml:"balance"`
}

// MarketConfig parameterizes the synthetic price feed.
type MarketConfig struct {
	Symbols        []string `json:"symbols" yaml:"symbols"`
	NoiseStdDev    float64  `json:"noise_stddev" yaml:"noise_stddev"` // percent per tick
	WindowCapacity int      `json:"window_capacity" yaml:"window_capacity"`
	InitPriceMin   float64  `json:"init_price_min" yaml:"init_price_min"`
	InitPriceMax   float64  `json:"init_price_max" yaml:"init_price_max"`
}

// StrategyConfig selects and tunes the signal strategy.
type StrategyConfig struct {
	Name          string  `json:"name" yaml:"name"`
	RSIOversold   float64 `json:"rsi_oversold" yaml:"rsi_oversold"`
	RSIOverbought float64 `json:"rsi_overbought" yaml:"rsi_overbought"`
}

// SimulationConfig contains cadence and sizing parameters.
type SimulationConfig struct {
	TickInterval string `json:"tick_interval" yaml:"tick_interval"` // e.g. "2s"
	EvalEvery    int    `json:"eval_every" yaml:"eval_every"`       // evaluate every Nth tick
	SizingCap    int    `json:"sizing_cap" yaml:"sizing_cap"`       // max shares per trade
	Seed         int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// ParseTickInterval converts the tick interval string to a time.Duration.
func (sc SimulationConfig) ParseTickInterval() (time.Duration, error) {
	d, err := time.ParseDuration(sc.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("tick_interval: %w", err)
	}
	return d, nil
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile    string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	PortfolioFile string `json:"portfolio_file,omitempty" yaml:"portfolio_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ServerConfig contains dashboard server parameters.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if len(c.Market.Symbols) == 0 {
		return fmt.Errorf("market.symbols must not be empty")
	}
	seen := make(map[string]bool, len(c.Market.Symbols))
	for _, s := range c.Market.Symbols {
		if s == "" {
			return fmt.Errorf("market.symbols must not contain empty symbols")
		}
		if seen[s] {
			return fmt.Errorf("market.symbols contains duplicate %q", s)
		}
		seen[s] = true
	}
	if c.Market.NoiseStdDev < 0 {
		return fmt.Errorf("market.noise_stddev must be non-negative")
	}
	if c.Market.WindowCapacity <= 0 {
		return fmt.Errorf("market.window_capacity must be positive")
	}
	if c.Market.InitPriceMin <= 0 || c.Market.InitPriceMax < c.Market.InitPriceMin {
		return fmt.Errorf("market initial price range is invalid")
	}
	if c.Strategy.Name == "" {
		return fmt.Errorf("strategy.name is required")
	}
	if c.Strategy.RSIOversold < 0 || c.Strategy.RSIOverbought > 100 ||
		c.Strategy.RSIOversold >= c.Strategy.RSIOverbought {
		return fmt.Errorf("strategy RSI thresholds must satisfy 0 <= oversold < overbought <= 100")
	}
	d, err := c.Simulation.ParseTickInterval()
	if err != nil {
		return fmt.Errorf("simulation.%w", err)
	}
	if d <= 0 {
		return fmt.Errorf("simulation.tick_interval must be positive, got %q", c.Simulation.TickInterval)
	}
	if c.Simulation.EvalEvery <= 0 {
		return fmt.Errorf("simulation.eval_every must be positive")
	}
	if c.Simulation.SizingCap <= 0 {
		return fmt.Errorf("simulation.sizing_cap must be positive")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.PortfolioFile == "" {
			return fmt.Errorf("journal trades_file and portfolio_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

// Default returns the reference configuration: a $10k account trading five
// symbols, a 2s fast tick with evaluation every 60 ticks, and at most 5
// shares per trade.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Balance: 10000,
		},
		Market: MarketConfig{
			Symbols:        []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA"},
			NoiseStdDev:    1.0,
			WindowCapacity: 100,
			InitPriceMin:   100,
			InitPriceMax:   500,
		},
		Strategy: StrategyConfig{
			Name:          "rules",
			RSIOversold:   30,
			RSIOverbought: 70,
		},
		Simulation: SimulationConfig{
			TickInterval: "2s",
			EvalEvery:    60,
			SizingCap:    5,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Server: ServerConfig{
			Addr: ":8000",
		},
	}
}
