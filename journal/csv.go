package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	trades    *csv.Writer
	portfolio *csv.Writer
	tf, pf    *os.File
}

func NewCSV(tradesPath, portfolioPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	pf, err := os.Create(portfolioPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	pw := csv.NewWriter(pf)

	err = tw.Write([]string{"trade_id", "time", "symbol", "side", "price", "quantity", "status", "realized_pl"})
	if err == nil {
		err = pw.Write([]string{"time", "balance", "equity"})
	}
	tw.Flush()
	pw.Flush()
	if err == nil {
		err = tw.Error()
	}
	if err == nil {
		err = pw.Error()
	}
	if err != nil {
		tf.Close()
		pf.Close()
		return nil, err
	}

	return &CSVJournal{tw, pw, tf, pf}, nil
}

func (j *CSVJournal) RecordTrade(t TradeEntry) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.Time.Format(time.RFC3339),
		t.Symbol,
		t.Side,
		f(t.Price),
		strconv.Itoa(t.Quantity),
		t.Status,
		f(t.RealizedPL),
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordPortfolio(p PortfolioSnapshot) error {
	err := j.portfolio.Write([]string{
		p.Time.Format(time.RFC3339),
		f(p.Balance),
		f(p.Equity),
	})
	if err != nil {
		return err
	}
	j.portfolio.Flush()
	return j.portfolio.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.portfolio.Flush()
	if err := j.portfolio.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.pf.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
