// Package journal persists trade records and portfolio snapshots produced
// by a simulation run. Journaling is an observer of the engine, never a
// dependency: the engine's state is built fresh each run and is not
// reloaded from a journal.
package journal

import "time"

// TradeEntry is one row of the trade log.
type TradeEntry struct {
	TradeID    string
	Time       time.Time
	Symbol     string
	Side       string
	Price      float64
	Quantity   int
	Status     string
	RealizedPL float64 // 0 unless a SELL fill
}

// PortfolioSnapshot is one point of the equity curve.
type PortfolioSnapshot struct {
	Time    time.Time
	Balance float64
	Equity  float64
}

type Journal interface {
	RecordTrade(TradeEntry) error
	RecordPortfolio(PortfolioSnapshot) error
	Close() error
}

// Nop discards everything. It is the default journal for server sessions,
// where each WebSocket connection owns an independent engine.
type Nop struct{}

func (Nop) RecordTrade(TradeEntry) error            { return nil }
func (Nop) RecordPortfolio(PortfolioSnapshot) error { return nil }
func (Nop) Close() error                            { return nil }
