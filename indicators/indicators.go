// Package indicators provides technical analysis computed over a rolling
// price window. All functions are pure: a snapshot is re-derived fresh from
// the window on every call, with no incremental state across ticks.
package indicators

import "math"

// Standard periods used by Compute.
const (
	RSIPeriod  = 14
	MACDFast   = 12
	MACDSlow   = 26
	MACDSignal = 9
	FastPeriod = 20
	SlowPeriod = 50
	BollPeriod = 20
	BollWidth  = 2.0

	// MinSamples is the history length required before a snapshot exists,
	// set by the slowest indicator. Lookback is how much of the window
	// Compute actually uses.
	MinSamples = SlowPeriod
	Lookback   = 50
)

// Snapshot holds every indicator value for one symbol at a point in time,
// rounded to 2 decimal places.
type Snapshot struct {
	RSI       float64 `json:"rsi"`
	MACD      float64 `json:"macd"`
	EMAFast   float64 `json:"ema_fast"`
	EMASlow   float64 `json:"ema_slow"`
	BollUpper float64 `json:"boll_upper"`
	BollLower float64 `json:"boll_lower"`
}

// Compute derives a snapshot from the most recent Lookback prices.
// It reports ok=false while the history is shorter than MinSamples;
// insufficient history is an expected state, not an error.
func Compute(prices []float64) (Snapshot, bool) {
	if len(prices) < MinSamples {
		return Snapshot{}, false
	}
	window := prices[len(prices)-Lookback:]

	rsi, err := RSI(window, RSIPeriod)
	if err != nil {
		return Snapshot{}, false
	}
	macd, err := MACDHist(window, MACDFast, MACDSlow, MACDSignal)
	if err != nil {
		return Snapshot{}, false
	}
	emaFast, err := EMA(window, FastPeriod)
	if err != nil {
		return Snapshot{}, false
	}
	emaSlow, err := EMA(window, SlowPeriod)
	if err != nil {
		return Snapshot{}, false
	}
	upper, lower, err := Bollinger(window, BollPeriod, BollWidth)
	if err != nil {
		return Snapshot{}, false
	}

	return Snapshot{
		RSI:       round2(rsi),
		MACD:      round2(macd),
		EMAFast:   round2(emaFast),
		EMASlow:   round2(emaSlow),
		BollUpper: round2(upper),
		BollLower: round2(lower),
	}, true
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
