package indicators

import "fmt"

// MACDHist calculates the MACD histogram: the difference between the
// fast/slow EMA spread (the MACD line) and its signal-period EMA.
// Requires slow+signal-1 prices so the signal line has a full seed window.
func MACDHist(prices []float64, fast, slow, signal int) (float64, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return 0, fmt.Errorf("periods must be positive, got fast=%d slow=%d signal=%d", fast, slow, signal)
	}
	if fast >= slow {
		return 0, fmt.Errorf("fast period %d must be shorter than slow period %d", fast, slow)
	}
	need := slow + signal - 1
	if len(prices) < need {
		return 0, fmt.Errorf("not enough prices: need %d, got %d", need, len(prices))
	}

	fastEMA, err := emaSeries(prices, fast)
	if err != nil {
		return 0, err
	}
	slowEMA, err := emaSeries(prices, slow)
	if err != nil {
		return 0, err
	}

	// MACD line exists once the slow EMA does; align the fast series to it.
	offset := slow - fast
	line := make([]float64, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalEMA, err := emaSeries(line, signal)
	if err != nil {
		return 0, err
	}

	return line[len(line)-1] - signalEMA[len(signalEMA)-1], nil
}
