package strategies

import "github.com/rustyeddy/simbot/indicators"

// Noop never trades.
type Noop struct{}

func (Noop) Name() string { return "noop" }

func (Noop) Decide(price float64, snap *indicators.Snapshot) Signal {
	_ = price
	_ = snap
	return Hold
}
