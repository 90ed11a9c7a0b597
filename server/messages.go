package server

import (
	"encoding/json"

	"github.com/rustyeddy/simbot/indicators"
	"github.com/rustyeddy/simbot/market"
	"github.com/rustyeddy/simbot/sim"
)

// Wire messages are tagged JSON objects; the "type" field is the contract
// the dashboard depends on. One engine tick can expand to several
// messages, sent in emission order.

type pricesMessage struct {
	Type   string         `json:"type"`
	Prices []market.Quote `json:"prices"`
}

type tradeMessage struct {
	Type  string    `json:"type"`
	Trade tradeBody `json:"trade"`
}

type tradeBody struct {
	Time       string   `json:"time"` // HH:MM:SS, dashboard display format
	Symbol     string   `json:"symbol"`
	Action     string   `json:"action"`
	Price      float64  `json:"price"`
	Quantity   int      `json:"quantity"`
	Status     string   `json:"status"`
	RealizedPL *float64 `json:"realized_pl,omitempty"`
}

type portfolioMessage struct {
	Type      string        `json:"type"`
	Balance   float64       `json:"balance"`
	Equity    float64       `json:"equity"`
	Portfolio []sim.Holding `json:"portfolio"`
}

type indicatorsMessage struct {
	Type       string                         `json:"type"`
	Indicators map[string]indicators.Snapshot `json:"indicators"`
}

// encodeResult serializes one tick result into wire messages.
func encodeResult(res *sim.Result) [][]byte {
	msgs := make([]interface{}, 0, len(res.Trades)+3)
	msgs = append(msgs, pricesMessage{Type: "prices", Prices: res.Prices})

	for _, rec := range res.Trades {
		body := tradeBody{
			Time:     rec.Time.Format("15:04:05"),
			Symbol:   rec.Symbol,
			Action:   string(rec.Side),
			Price:    rec.Price,
			Quantity: rec.Quantity,
			Status:   string(rec.Status),
		}
		if rec.Side == sim.SideSell && rec.Status == sim.StatusExecuted {
			pl := rec.RealizedPL
			body.RealizedPL = &pl
		}
		msgs = append(msgs, tradeMessage{Type: "trade", Trade: body})
	}

	if res.Portfolio != nil {
		pf := res.Portfolio
		holdings := pf.Holdings
		if holdings == nil {
			holdings = []sim.Holding{}
		}
		msgs = append(msgs, portfolioMessage{
			Type:      "portfolio",
			Balance:   pf.Balance,
			Equity:    pf.Equity,
			Portfolio: holdings,
		})
	}
	if len(res.Indicators) > 0 {
		msgs = append(msgs, indicatorsMessage{Type: "indicators", Indicators: res.Indicators})
	}

	out := make([][]byte, 0, len(msgs))
	for _, m := range msgs {
		data, err := json.Marshal(m)
		if err != nil {
			continue
		}
		out = append(out, data)
	}
	return out
}
