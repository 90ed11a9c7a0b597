package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10000.0, cfg.Account.Balance)
	assert.Equal(t, 5, cfg.Simulation.SizingCap)
	assert.Len(t, cfg.Market.Symbols, 5)
	assert.Equal(t, 100, cfg.Market.WindowCapacity)

	d, err := cfg.Simulation.ParseTickInterval()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero balance", func(c *Config) { c.Account.Balance = 0 }},
		{"negative balance", func(c *Config) { c.Account.Balance = -100 }},
		{"no symbols", func(c *Config) { c.Market.Symbols = nil }},
		{"empty symbol", func(c *Config) { c.Market.Symbols = []string{"AAPL", ""} }},
		{"duplicate symbol", func(c *Config) { c.Market.Symbols = []string{"AAPL", "AAPL"} }},
		{"negative noise", func(c *Config) { c.Market.NoiseStdDev = -1 }},
		{"zero window", func(c *Config) { c.Market.WindowCapacity = 0 }},
		{"bad price range", func(c *Config) { c.Market.InitPriceMin = 500; c.Market.InitPriceMax = 100 }},
		{"missing strategy", func(c *Config) { c.Strategy.Name = "" }},
		{"inverted rsi thresholds", func(c *Config) { c.Strategy.RSIOversold = 70; c.Strategy.RSIOverbought = 30 }},
		{"bad tick interval", func(c *Config) { c.Simulation.TickInterval = "soon" }},
		{"zero tick interval", func(c *Config) { c.Simulation.TickInterval = "0s" }},
		{"negative tick interval", func(c *Config) { c.Simulation.TickInterval = "-2s" }},
		{"zero eval cadence", func(c *Config) { c.Simulation.EvalEvery = 0 }},
		{"zero sizing cap", func(c *Config) { c.Simulation.SizingCap = 0 }},
		{"unknown journal type", func(c *Config) { c.Journal.Type = "parquet" }},
		{"csv journal without files", func(c *Config) { c.Journal.Type = "csv" }},
		{"sqlite journal without path", func(c *Config) { c.Journal.Type = "sqlite" }},
		{"missing server addr", func(c *Config) { c.Server.Addr = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Account.Balance = 25000
	cfg.Simulation.Seed = 42
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Market.Symbols = []string{"NVDA"}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Account.Balance = -1
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: [nor json"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile("/does/not/exist.yaml")
	assert.Error(t, err)
}
