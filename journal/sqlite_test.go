package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	ts := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(TradeEntry{
		TradeID:  "01TRADE",
		Time:     ts,
		Symbol:   "TSLA",
		Side:     "BUY",
		Price:    250.5,
		Quantity: 3,
		Status:   "EXECUTED",
	}))
	require.NoError(t, j.RecordTrade(TradeEntry{
		TradeID:  "02TRADE",
		Time:     ts.Add(time.Minute),
		Symbol:   "TSLA",
		Side:     "BUY",
		Price:    300,
		Quantity: 2,
		Status:   "REJECTED",
	}))
	require.NoError(t, j.RecordPortfolio(PortfolioSnapshot{
		Time:    ts,
		Balance: 9248.5,
		Equity:  10000,
	}))
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&count))
	assert.Equal(t, 2, count)

	var symbol, side, status string
	var price float64
	var qty int
	require.NoError(t, db.QueryRow(
		`SELECT symbol, side, price, quantity, status FROM trades WHERE trade_id = ?`,
		"01TRADE",
	).Scan(&symbol, &side, &price, &qty, &status))
	assert.Equal(t, "TSLA", symbol)
	assert.Equal(t, "BUY", side)
	assert.Equal(t, 250.5, price)
	assert.Equal(t, 3, qty)
	assert.Equal(t, "EXECUTED", status)

	var balance, equity float64
	require.NoError(t, db.QueryRow(`SELECT balance, equity FROM portfolio`).Scan(&balance, &equity))
	assert.Equal(t, 9248.5, balance)
	assert.Equal(t, 10000.0, equity)
}

func TestSQLiteJournalDuplicateTradeID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	defer j.Close()

	entry := TradeEntry{TradeID: "01DUP", Time: time.Now(), Symbol: "AAPL", Side: "BUY", Status: "EXECUTED"}
	require.NoError(t, j.RecordTrade(entry))
	assert.Error(t, j.RecordTrade(entry))
}
