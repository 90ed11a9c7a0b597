package sim

import (
	"math/rand"
	"time"

	"github.com/rustyeddy/simbot/internal/id"
	"github.com/rustyeddy/simbot/journal"
	"github.com/rustyeddy/simbot/market"
)

// Ledger applies trade signals against an account. It is the sole mutation
// entry point: no other path may change the balance or holdings.
//
// Sizing: a BUY may fill at most min(sizingCap, floor(balance/price))
// shares, which keeps the balance non-negative by construction; a SELL at
// most the held shares. An infeasible trade produces a REJECTED record
// carrying a nominal random quantity (the draw happens before the
// feasibility check, matching the original bot's behavior).
type Ledger struct {
	acct      *Account
	sizingCap int
	rng       *rand.Rand
	journal   journal.Journal
	now       func() time.Time
}

func NewLedger(acct *Account, sizingCap int, rng *rand.Rand, j journal.Journal) *Ledger {
	if j == nil {
		j = journal.Nop{}
	}
	return &Ledger{
		acct:      acct,
		sizingCap: sizingCap,
		rng:       rng,
		journal:   j,
		now:       time.Now,
	}
}

func (l *Ledger) Account() *Account { return l.acct }

// Apply executes or rejects one signal at the given price and appends
// exactly one TradeRecord to the trade log. Rejection is expected domain
// behavior, not an error; the returned error covers journaling only.
func (l *Ledger) Apply(symbol string, side Side, price float64) (TradeRecord, error) {
	rec := TradeRecord{
		ID:     id.New(),
		Time:   l.now(),
		Symbol: symbol,
		Side:   side,
		Price:  price,
	}

	max := 0
	switch side {
	case SideBuy:
		if price > 0 {
			max = int(l.acct.Balance / price)
		}
		if max > l.sizingCap {
			max = l.sizingCap
		}
	case SideSell:
		max = l.acct.Position(symbol).Shares
	}

	if max <= 0 {
		rec.Quantity = 1 + l.rng.Intn(l.sizingCap)
		rec.Status = StatusRejected
		return rec, l.append(rec)
	}

	l.execute(&rec, 1+l.rng.Intn(max))
	return rec, l.append(rec)
}

// execute books a feasible fill of qty shares against the account.
func (l *Ledger) execute(rec *TradeRecord, qty int) {
	rec.Quantity = qty
	rec.Status = StatusExecuted

	pos := l.acct.Position(rec.Symbol)
	switch rec.Side {
	case SideBuy:
		cost := rec.Price * float64(qty)
		l.acct.Balance -= cost
		pos.AvgCost = (pos.AvgCost*float64(pos.Shares) + cost) / float64(pos.Shares+qty)
		pos.Shares += qty
	case SideSell:
		l.acct.Balance += rec.Price * float64(qty)
		rec.RealizedPL = market.Round2((rec.Price - pos.AvgCost) * float64(qty))
		pos.Shares -= qty
		if pos.Shares == 0 {
			pos.AvgCost = 0
		}
	}
	l.acct.Positions[rec.Symbol] = pos
}

func (l *Ledger) append(rec TradeRecord) error {
	l.acct.Trades = append(l.acct.Trades, rec)
	return l.journal.RecordTrade(journal.TradeEntry{
		TradeID:    rec.ID,
		Time:       rec.Time,
		Symbol:     rec.Symbol,
		Side:       string(rec.Side),
		Price:      rec.Price,
		Quantity:   rec.Quantity,
		Status:     string(rec.Status),
		RealizedPL: rec.RealizedPL,
	})
}
