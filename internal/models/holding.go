package models

// Action represents the suggested action for a holding
type Action string

const (
	ActionBuy      Action = "BUY"
	ActionHold     Action = "HOLD"
	ActionSell     Action = "SELL"
	ActionExit     Action = "EXIT"
	ActionTrim     Action = "TRIM"
	ActionTrack    Action = "TRACK"
	ActionHighRisk Action = "HIGH_RISK"
)

// Holding represents one normalized security position.
// ProfitLossPercent is a pointer because "no P/L data" (buy price of zero,
// so no base to compute against) is distinct from "0% P/L" and the
// recommendation cascade branches on that distinction.
type Holding struct {
	Symbol            string   `json:"symbol"`
	Quantity          float64  `json:"quantity"`
	BuyPrice          float64  `json:"buy_price"`
	CurrentPrice      float64  `json:"current_price"`
	Value             float64  `json:"value"`
	ProfitLoss        float64  `json:"profit_loss"`
	ProfitLossPercent *float64 `json:"profit_loss_percent,omitempty"`
}

// PortfolioSnapshot holds portfolio-level totals derived from a holding set.
// It is recomputed on every read and never persisted.
type PortfolioSnapshot struct {
	TotalValue             float64 `json:"total_value"`
	TotalCost              float64 `json:"total_cost"`
	TotalProfitLoss        float64 `json:"total_profit_loss"`
	TotalProfitLossPercent float64 `json:"total_profit_loss_percent"`
	HoldingCount           int     `json:"holding_count"`
}

// Allocation returns the holding's share of total portfolio value as a
// percentage, 0 when the portfolio has no value.
func (s PortfolioSnapshot) Allocation(h Holding) float64 {
	if s.TotalValue <= 0 {
		return 0
	}
	return h.Value / s.TotalValue * 100
}

// Recommendation is the classifier output for a single holding
type Recommendation struct {
	Symbol     string   `json:"symbol"`
	Percent    *float64 `json:"percent,omitempty"`
	Allocation float64  `json:"allocation"`
	Action     Action   `json:"action"`
	Message    string   `json:"message"`
}

// RawHolding is a stored holding record exactly as uploaded, before
// normalization. Data stays loosely typed so the normalizer sees the same
// shape the user submitted.
type RawHolding struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	Data   any   `json:"data"`
}
