package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(balance float64, seed int64) *Ledger {
	return NewLedger(NewAccount(balance), 5, rand.New(rand.NewSource(seed)), nil)
}

// buy books an exact-quantity fill, bypassing the random sizing draw.
func buy(l *Ledger, symbol string, price float64, qty int) TradeRecord {
	rec := TradeRecord{Symbol: symbol, Side: SideBuy, Price: price}
	l.execute(&rec, qty)
	return rec
}

func sell(l *Ledger, symbol string, price float64, qty int) TradeRecord {
	rec := TradeRecord{Symbol: symbol, Side: SideSell, Price: price}
	l.execute(&rec, qty)
	return rec
}

func TestWeightedAverageCostBasis(t *testing.T) {
	l := newTestLedger(10000, 1)

	// 3 @ 100 then 2 @ 110: basis = (3*100 + 2*110) / 5 = 104.
	buy(l, "AAPL", 100, 3)
	buy(l, "AAPL", 110, 2)

	pos := l.Account().Position("AAPL")
	assert.Equal(t, 5, pos.Shares)
	assert.InDelta(t, 104, pos.AvgCost, 0.001)
	assert.InDelta(t, 10000-300-220, l.Account().Balance, 0.001)

	// Selling all 5 @ 120 realizes (120-104)*5 = 80 and credits 600.
	rec := sell(l, "AAPL", 120, 5)
	assert.InDelta(t, 80, rec.RealizedPL, 0.001)

	pos = l.Account().Position("AAPL")
	assert.Equal(t, 0, pos.Shares)
	assert.Equal(t, 0.0, pos.AvgCost)
	assert.InDelta(t, 10000-520+600, l.Account().Balance, 0.001)
}

func TestSellLeavesRemainingBasisUnchanged(t *testing.T) {
	l := newTestLedger(10000, 1)

	buy(l, "AAPL", 100, 4)
	sell(l, "AAPL", 150, 2)

	pos := l.Account().Position("AAPL")
	assert.Equal(t, 2, pos.Shares)
	assert.InDelta(t, 100, pos.AvgCost, 0.001)
}

func TestEmptiedPositionResetsBasis(t *testing.T) {
	l := newTestLedger(10000, 1)

	buy(l, "AAPL", 100, 3)
	sell(l, "AAPL", 90, 3)

	// A new BUY after flattening starts a fresh basis with no residual
	// influence from the old position.
	buy(l, "AAPL", 200, 2)
	pos := l.Account().Position("AAPL")
	assert.Equal(t, 2, pos.Shares)
	assert.InDelta(t, 200, pos.AvgCost, 0.001)
}

func TestApplyRejectsUnaffordableBuy(t *testing.T) {
	l := newTestLedger(50, 1)

	rec, err := l.Apply("AAPL", SideBuy, 100)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, rec.Status)
	assert.GreaterOrEqual(t, rec.Quantity, 1)
	assert.LessOrEqual(t, rec.Quantity, 5)
	assert.Equal(t, 50.0, l.Account().Balance)
	assert.Equal(t, 0, l.Account().Position("AAPL").Shares)
}

func TestApplyRejectsSellWithNoShares(t *testing.T) {
	l := newTestLedger(10000, 1)

	rec, err := l.Apply("AAPL", SideSell, 100)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, rec.Status)
	assert.Equal(t, 10000.0, l.Account().Balance)
}

func TestApplyRespectsSizingCap(t *testing.T) {
	l := newTestLedger(1000000, 2)

	for i := 0; i < 50; i++ {
		rec, err := l.Apply("AAPL", SideBuy, 10)
		require.NoError(t, err)
		assert.Equal(t, StatusExecuted, rec.Status)
		assert.GreaterOrEqual(t, rec.Quantity, 1)
		assert.LessOrEqual(t, rec.Quantity, 5)
	}
}

func TestApplyAppendsExactlyOneRecordPerCall(t *testing.T) {
	l := newTestLedger(1000, 3)

	for i := 1; i <= 20; i++ {
		_, err := l.Apply("AAPL", SideBuy, 100)
		require.NoError(t, err)
		assert.Len(t, l.Account().Trades, i)
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	l := newTestLedger(500, 4)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 2000; i++ {
		side := SideBuy
		if rng.Intn(2) == 1 {
			side = SideSell
		}
		price := 1 + rng.Float64()*300

		_, err := l.Apply("AAPL", side, price)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, l.Account().Balance, 0.0)
		assert.GreaterOrEqual(t, l.Account().Position("AAPL").Shares, 0)
	}
}

func TestExecutedBuysMatchWeightedMeanOfFills(t *testing.T) {
	l := newTestLedger(100000, 5)

	var totalCost float64
	var totalQty int
	prices := []float64{100, 105, 98, 110, 120, 95}

	for _, p := range prices {
		rec, err := l.Apply("AAPL", SideBuy, p)
		require.NoError(t, err)
		require.Equal(t, StatusExecuted, rec.Status)
		totalCost += rec.Price * float64(rec.Quantity)
		totalQty += rec.Quantity
	}

	pos := l.Account().Position("AAPL")
	assert.Equal(t, totalQty, pos.Shares)
	assert.InDelta(t, totalCost/float64(totalQty), pos.AvgCost, 0.0001)
}
