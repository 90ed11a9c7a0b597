package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/simbot/indicators"
)

func TestRulesDecide(t *testing.T) {
	s := NewRules(nil)

	t.Run("nil snapshot always holds", func(t *testing.T) {
		assert.Equal(t, Hold, s.Decide(100, nil))
	})

	t.Run("mean reversion buy", func(t *testing.T) {
		snap := &indicators.Snapshot{RSI: 25, BollLower: 95, BollUpper: 105}
		assert.Equal(t, Buy, s.Decide(90, snap))
	})

	t.Run("mean reversion sell", func(t *testing.T) {
		snap := &indicators.Snapshot{RSI: 75, BollLower: 95, BollUpper: 105}
		assert.Equal(t, Sell, s.Decide(110, snap))
	})

	t.Run("trend following buy", func(t *testing.T) {
		snap := &indicators.Snapshot{
			RSI: 50, MACD: 1.5, EMAFast: 102, EMASlow: 100,
			BollLower: 95, BollUpper: 105,
		}
		assert.Equal(t, Buy, s.Decide(100, snap))
	})

	t.Run("trend following sell", func(t *testing.T) {
		snap := &indicators.Snapshot{
			RSI: 50, MACD: -1.5, EMAFast: 98, EMASlow: 100,
			BollLower: 95, BollUpper: 105,
		}
		assert.Equal(t, Sell, s.Decide(100, snap))
	})

	t.Run("mean reversion outranks trend", func(t *testing.T) {
		// Oversold below the lower band while the trend rules say SELL:
		// rule 1 must win.
		snap := &indicators.Snapshot{
			RSI: 25, MACD: -1.5, EMAFast: 98, EMASlow: 100,
			BollLower: 95, BollUpper: 105,
		}
		assert.Equal(t, Buy, s.Decide(90, snap))

		// Overbought above the upper band while the trend rules say BUY:
		// rule 2 must win.
		snap = &indicators.Snapshot{
			RSI: 75, MACD: 1.5, EMAFast: 102, EMASlow: 100,
			BollLower: 95, BollUpper: 105,
		}
		assert.Equal(t, Sell, s.Decide(110, snap))
	})

	t.Run("no rule matches holds", func(t *testing.T) {
		snap := &indicators.Snapshot{
			RSI: 50, MACD: 1.5, EMAFast: 98, EMASlow: 100,
			BollLower: 95, BollUpper: 105,
		}
		assert.Equal(t, Hold, s.Decide(100, snap))
	})

	t.Run("deterministic", func(t *testing.T) {
		snap := &indicators.Snapshot{RSI: 25, BollLower: 95, BollUpper: 105}
		first := s.Decide(90, snap)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, s.Decide(90, snap))
		}
	})
}

func TestRulesThresholds(t *testing.T) {
	s := NewRules(&RulesConfig{RSIOversold: 40, RSIOverbought: 60})

	snap := &indicators.Snapshot{RSI: 35, BollLower: 95, BollUpper: 105}
	assert.Equal(t, Buy, s.Decide(90, snap))

	// Same input holds under the default 30/70 thresholds.
	assert.Equal(t, Hold, NewRules(nil).Decide(90, snap))
}

func TestNoop(t *testing.T) {
	s := Noop{}
	snap := &indicators.Snapshot{RSI: 25, BollLower: 95, BollUpper: 105}
	assert.Equal(t, Hold, s.Decide(90, snap))
	assert.Equal(t, Hold, s.Decide(90, nil))
}

func TestLookup(t *testing.T) {
	s, err := Lookup("rules")
	require.NoError(t, err)
	assert.Equal(t, "rules", s.Name())

	s, err = Lookup("  NOOP ")
	require.NoError(t, err)
	assert.Equal(t, "noop", s.Name())

	_, err = Lookup("nope")
	assert.Error(t, err)
}
