package indicators

import (
	"fmt"
	"math"
)

// Bollinger calculates Bollinger bands over the last period prices:
// upper/lower = SMA ± width standard deviations (population stddev).
// A zero-variance window collapses both bands onto the SMA.
func Bollinger(prices []float64, period int, width float64) (upper, lower float64, err error) {
	mean, err := SMA(prices, period)
	if err != nil {
		return 0, 0, err
	}
	if width < 0 {
		return 0, 0, fmt.Errorf("width must be non-negative, got %v", width)
	}

	variance := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		d := prices[i] - mean
		variance += d * d
	}
	variance /= float64(period)
	dev := math.Sqrt(variance)

	return mean + width*dev, mean - width*dev, nil
}
