package strategies

import "github.com/rustyeddy/simbot/indicators"

// RulesConfig tunes the RSI thresholds of the rule-based strategy.
type RulesConfig struct {
	RSIOversold   float64 `json:"rsi_oversold" yaml:"rsi_oversold"`     // 30
	RSIOverbought float64 `json:"rsi_overbought" yaml:"rsi_overbought"` // 70
}

func RulesConfigDefaults() *RulesConfig {
	return &RulesConfig{
		RSIOversold:   30,
		RSIOverbought: 70,
	}
}

// Rules combines mean-reversion (Bollinger + RSI) with trend-following
// (MACD histogram + EMA alignment). The rules are checked in a fixed
// order; the first match wins:
//
//  1. price below the lower band and RSI oversold  -> BUY
//  2. price above the upper band and RSI overbought -> SELL
//  3. positive MACD histogram with fast EMA above slow -> BUY
//  4. negative MACD histogram with fast EMA below slow -> SELL
//  5. otherwise HOLD
type Rules struct {
	cfg *RulesConfig
}

func NewRules(cfg *RulesConfig) *Rules {
	if cfg == nil {
		cfg = RulesConfigDefaults()
	}
	return &Rules{cfg: cfg}
}

func (s *Rules) Name() string { return "rules" }

func (s *Rules) Decide(price float64, snap *indicators.Snapshot) Signal {
	if snap == nil {
		return Hold
	}

	switch {
	case price < snap.BollLower && snap.RSI < s.cfg.RSIOversold:
		return Buy
	case price > snap.BollUpper && snap.RSI > s.cfg.RSIOverbought:
		return Sell
	case snap.MACD > 0 && snap.EMAFast > snap.EMASlow:
		return Buy
	case snap.MACD < 0 && snap.EMAFast < snap.EMASlow:
		return Sell
	default:
		return Hold
	}
}
