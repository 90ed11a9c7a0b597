package sim

// Position is one symbol's holding: a non-negative share count and the
// weighted-average cost basis of those shares. AvgCost is meaningful only
// while Shares > 0; it resets when a position is emptied.
type Position struct {
	Shares  int     `json:"shares"`
	AvgCost float64 `json:"avg_cost"`
}

// Account is the single mutable ledger of a session: cash balance,
// per-symbol positions, and the ordered trade log. Exactly one ledger
// mutates it, from one sequential control flow.
type Account struct {
	Balance   float64
	Positions map[string]Position
	Trades    []TradeRecord
}

func NewAccount(balance float64) *Account {
	return &Account{
		Balance:   balance,
		Positions: make(map[string]Position),
	}
}

// Position returns the holding for symbol; the zero value means flat.
func (a *Account) Position(symbol string) Position {
	return a.Positions[symbol]
}
