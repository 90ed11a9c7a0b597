package sim

import "time"

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type Status string

const (
	StatusExecuted Status = "EXECUTED"
	StatusRejected Status = "REJECTED"
)

// TradeRecord is an immutable record of one ledger application, executed
// or rejected. Records are appended to the account's trade log and never
// edited or removed.
type TradeRecord struct {
	ID         string    `json:"id"`
	Time       time.Time `json:"time"`
	Symbol     string    `json:"symbol"`
	Side       Side      `json:"side"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Status     Status    `json:"status"`
	RealizedPL float64   `json:"realized_pl"` // set on SELL fills only
}
