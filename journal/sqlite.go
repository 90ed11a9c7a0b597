package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeEntry) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, time, symbol, side, price, quantity, status, realized_pl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Time, t.Symbol, t.Side,
		t.Price, t.Quantity, t.Status, t.RealizedPL,
	)
	return err
}

func (j *SQLiteJournal) RecordPortfolio(p PortfolioSnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO portfolio (time, balance, equity)
		VALUES (?, ?, ?)`,
		p.Time, p.Balance, p.Equity,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
