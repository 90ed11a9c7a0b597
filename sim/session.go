package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rustyeddy/simbot/indicators"
	"github.com/rustyeddy/simbot/internal/id"
	"github.com/rustyeddy/simbot/journal"
	"github.com/rustyeddy/simbot/market"
	"github.com/rustyeddy/simbot/strategies"
)

// Options configures one simulation session.
type Options struct {
	Symbols        []string
	Balance        float64
	SizingCap      int
	NoiseStdDev    float64 // percent per tick
	WindowCapacity int
	InitPriceMin   float64
	InitPriceMax   float64
	TickInterval   time.Duration
	EvalEvery      int // strategy evaluation fires every Nth tick
	Seed           int64
	Strategy       strategies.Strategy
	Journal        journal.Journal
}

// Validate fails fast on a configuration the engine cannot run with.
func (o *Options) Validate() error {
	if len(o.Symbols) == 0 {
		return fmt.Errorf("at least one symbol is required")
	}
	if o.Balance <= 0 {
		return fmt.Errorf("balance must be positive, got %v", o.Balance)
	}
	if o.SizingCap <= 0 {
		return fmt.Errorf("sizing cap must be positive, got %d", o.SizingCap)
	}
	if o.WindowCapacity <= 0 {
		return fmt.Errorf("window capacity must be positive, got %d", o.WindowCapacity)
	}
	if o.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", o.TickInterval)
	}
	if o.EvalEvery <= 0 {
		return fmt.Errorf("eval every must be positive, got %d", o.EvalEvery)
	}
	if o.NoiseStdDev < 0 {
		return fmt.Errorf("noise stddev must be non-negative, got %v", o.NoiseStdDev)
	}
	if o.InitPriceMin <= 0 || o.InitPriceMax < o.InitPriceMin {
		return fmt.Errorf("initial price range [%v, %v] is invalid", o.InitPriceMin, o.InitPriceMax)
	}
	return nil
}

// Holding is one symbol's position marked at the current price.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Quantity     int     `json:"quantity"`
	AvgCost      float64 `json:"avg_cost"`
	MarketValue  float64 `json:"market_value"`
	UnrealizedPL float64 `json:"unrealized_pl"`
}

// PortfolioSnapshot is the account state after an evaluation pass.
type PortfolioSnapshot struct {
	Balance  float64   `json:"balance"`
	Equity   float64   `json:"equity"`
	Holdings []Holding `json:"holdings"`
}

// Result carries everything one tick produced, in emission order.
// Trades, Portfolio, and Indicators are set only on evaluation ticks.
type Result struct {
	Prices     []market.Quote
	Trades     []TradeRecord
	Portfolio  *PortfolioSnapshot
	Indicators map[string]indicators.Snapshot
}

// EventSink receives tick results. Emit must not block: the engine is
// fire-and-forget, and a slow observer must never stall simulation state.
type EventSink interface {
	Emit(*Result)
}

// Session is one independent simulation: a price simulator, a strategy,
// and a ledger, advanced by a single sequential tick loop. Sessions share
// no mutable state, so concurrent observers each get their own.
type Session struct {
	id        string
	symbols   []string
	simulator *market.Simulator
	ledger    *Ledger
	strat     strategies.Strategy
	journal   journal.Journal
	interval  time.Duration
	evalEvery int
	ticks     int
	now       func() time.Time
}

// NewSession builds a session from validated options. A Seed of 0 means
// seed from the wall clock; any other value makes the whole run (noise
// draws and trade sizing) reproducible.
func NewSession(opt Options) (*Session, error) {
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session options: %w", err)
	}

	seed := opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	strat := opt.Strategy
	if strat == nil {
		strat = strategies.NewRules(nil)
	}
	j := opt.Journal
	if j == nil {
		j = journal.Nop{}
	}

	simulator := market.NewSimulator(market.SimulatorConfig{
		Symbols:        opt.Symbols,
		NoiseStdDev:    opt.NoiseStdDev,
		WindowCapacity: opt.WindowCapacity,
		InitPriceMin:   opt.InitPriceMin,
		InitPriceMax:   opt.InitPriceMax,
	}, rng)

	return &Session{
		id:        id.New(),
		symbols:   opt.Symbols,
		simulator: simulator,
		ledger:    NewLedger(NewAccount(opt.Balance), opt.SizingCap, rng, j),
		strat:     strat,
		journal:   j,
		interval:  opt.TickInterval,
		evalEvery: opt.EvalEvery,
		now:       time.Now,
	}, nil
}

func (s *Session) ID() string        { return s.id }
func (s *Session) Account() *Account { return s.ledger.Account() }

// Tick advances prices one step. Every evalEvery-th tick it also runs the
// strategy over all symbols in configuration order, applies any non-HOLD
// signals through the ledger, and snapshots the portfolio.
func (s *Session) Tick() (*Result, error) {
	s.ticks++
	res := &Result{Prices: s.simulator.Tick()}

	if s.ticks%s.evalEvery != 0 {
		return res, nil
	}

	snaps := make(map[string]indicators.Snapshot)
	for _, sym := range s.symbols {
		price, _ := s.simulator.Price(sym)

		var snapRef *indicators.Snapshot
		if snap, ok := indicators.Compute(s.simulator.History(sym)); ok {
			snaps[sym] = snap
			snapRef = &snap
		}

		sig := s.strat.Decide(price, snapRef)
		if sig == strategies.Hold {
			continue
		}

		side := SideBuy
		if sig == strategies.Sell {
			side = SideSell
		}
		rec, err := s.ledger.Apply(sym, side, price)
		if err != nil {
			return nil, fmt.Errorf("apply %s %s: %w", side, sym, err)
		}
		res.Trades = append(res.Trades, rec)
	}

	res.Indicators = snaps
	pf := s.portfolio()
	res.Portfolio = &pf

	if err := s.journal.RecordPortfolio(journal.PortfolioSnapshot{
		Time:    s.now(),
		Balance: pf.Balance,
		Equity:  pf.Equity,
	}); err != nil {
		return nil, fmt.Errorf("record portfolio: %w", err)
	}
	return res, nil
}

// Run drives the tick loop at the configured cadence until ctx is
// canceled. Each result goes to sink in emission order; Run returns once
// canceled and nothing outlives it.
func (s *Session) Run(ctx context.Context, sink EventSink) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, err := s.Tick()
			if err != nil {
				return err
			}
			sink.Emit(res)
		}
	}
}

func (s *Session) portfolio() PortfolioSnapshot {
	acct := s.ledger.Account()
	pf := PortfolioSnapshot{Balance: market.Round2(acct.Balance)}

	equity := acct.Balance
	for _, sym := range s.symbols {
		pos := acct.Position(sym)
		if pos.Shares == 0 {
			continue
		}
		price, _ := s.simulator.Price(sym)
		value := price * float64(pos.Shares)
		equity += value
		pf.Holdings = append(pf.Holdings, Holding{
			Symbol:       sym,
			Quantity:     pos.Shares,
			AvgCost:      market.Round2(pos.AvgCost),
			MarketValue:  market.Round2(value),
			UnrealizedPL: market.Round2((price - pos.AvgCost) * float64(pos.Shares)),
		})
	}
	pf.Equity = market.Round2(equity)
	return pf
}
