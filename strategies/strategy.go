package strategies

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/simbot/indicators"
)

// Signal is a trade decision for one symbol at one evaluation.
type Signal string

const (
	Buy  Signal = "BUY"
	Sell Signal = "SELL"
	Hold Signal = "HOLD"
)

// Strategy maps the current price and indicator snapshot to a signal.
// Decide must be deterministic: the same inputs always yield the same
// signal. A nil snapshot (insufficient history) must yield Hold.
type Strategy interface {
	Name() string
	Decide(price float64, snap *indicators.Snapshot) Signal
}

var registry = make(map[string]Strategy)

func Register(s Strategy) {
	registry[s.Name()] = s
}

// Lookup returns the registered strategy for name.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (supported: rules, noop)", name)
	}
	return s, nil
}

func init() {
	Register(NewRules(nil))
	Register(Noop{})
}
