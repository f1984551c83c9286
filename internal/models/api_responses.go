package models

// HoldingView pairs a normalized holding with its allocation share for
// dashboard rendering
type HoldingView struct {
	Holding
	Allocation float64 `json:"allocation"`
}

// DashboardResponse is the payload for GET /portfolio
type DashboardResponse struct {
	Snapshot        PortfolioSnapshot `json:"snapshot"`
	Holdings        []HoldingView     `json:"holdings"`
	Recommendations []Recommendation  `json:"recommendations"`
	Warnings        []Warning         `json:"warnings,omitempty"`
}

// RecommendationsResponse is the payload for GET /recommendations
type RecommendationsResponse struct {
	Count           int              `json:"count"`
	Recommendations []Recommendation `json:"recommendations"`
	Warnings        []Warning        `json:"warnings,omitempty"`
}

// ReplaceHoldingsResponse reports how many raw records were stored
type ReplaceHoldingsResponse struct {
	Count    int       `json:"count"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// RefreshPricesResponse reports how many records received a fresh price
type RefreshPricesResponse struct {
	Updated  int       `json:"updated"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// SavingsPlanRequest represents the request body for POST /savings/plan
type SavingsPlanRequest struct {
	MonthlyIncome       float64 `json:"monthly_income" binding:"required"`
	GoalAmount          float64 `json:"goal_amount" binding:"required"`
	Months              int     `json:"months" binding:"required"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
