package market

import (
	"math"
	"math/rand"
)

// PriceFloor is the minimum price a symbol can reach. A noise draw that
// would push a price to zero or below clamps here instead.
const PriceFloor = 0.01

// Quote is one symbol's price after a tick, with the percent change since
// the previous tick (0 on the first tick).
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// SimulatorConfig parameterizes the synthetic price process.
type SimulatorConfig struct {
	Symbols        []string
	NoiseStdDev    float64 // per-tick Gaussian stddev, in percent
	WindowCapacity int
	InitPriceMin   float64
	InitPriceMax   float64
}

// Simulator advances per-symbol prices with Gaussian percent noise:
//
//	new = old * (1 + draw/100)
//
// Prices are rounded to 2 decimals before they are stored or emitted, so
// rounding compounds across ticks; at this noise scale that is an accepted
// approximation. The simulator owns its series exclusively.
type Simulator struct {
	symbols []string
	series  map[string]*Series
	stddev  float64
	rng     *rand.Rand
}

// NewSimulator seeds every symbol with a uniform starting price in
// [InitPriceMin, InitPriceMax] drawn from rng.
func NewSimulator(cfg SimulatorConfig, rng *rand.Rand) *Simulator {
	s := &Simulator{
		symbols: cfg.Symbols,
		series:  make(map[string]*Series, len(cfg.Symbols)),
		stddev:  cfg.NoiseStdDev,
		rng:     rng,
	}
	for _, sym := range cfg.Symbols {
		ser := NewSeries(cfg.WindowCapacity)
		start := cfg.InitPriceMin + rng.Float64()*(cfg.InitPriceMax-cfg.InitPriceMin)
		ser.Append(clamp(Round2(start)))
		s.series[sym] = ser
	}
	return s
}

// Tick advances every symbol one step and returns the new quotes in
// configuration order.
func (s *Simulator) Tick() []Quote {
	quotes := make([]Quote, 0, len(s.symbols))
	for _, sym := range s.symbols {
		ser := s.series[sym]
		old, ok := ser.Last()

		draw := s.rng.NormFloat64() * s.stddev
		price := clamp(Round2(old * (1 + draw/100)))
		ser.Append(price)

		change := 0.0
		if ok && old > 0 {
			change = Round2((price - old) / old * 100)
		}
		quotes = append(quotes, Quote{Symbol: sym, Price: price, Change: change})
	}
	return quotes
}

// Price returns the current price for a symbol.
func (s *Simulator) Price(symbol string) (float64, bool) {
	ser, ok := s.series[symbol]
	if !ok {
		return 0, false
	}
	return ser.Last()
}

// History returns a copy of the symbol's price window, oldest first.
func (s *Simulator) History(symbol string) []float64 {
	ser, ok := s.series[symbol]
	if !ok {
		return nil
	}
	return ser.Values()
}

func (s *Simulator) Symbols() []string { return s.symbols }

func clamp(p float64) float64 {
	if p < PriceFloor {
		return PriceFloor
	}
	return p
}

// Round2 rounds to 2 decimal places, the precision of every emitted price.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
