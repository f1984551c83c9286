package models

// SavingsPlan is the full projection for a savings goal
type SavingsPlan struct {
	MonthlyRequired    float64           `json:"monthly_required"`
	PercentOfIncome    float64           `json:"percent_of_income"`
	TotalContributions float64           `json:"total_contributions"`
	ProjectedReturns   float64           `json:"projected_returns"`
	Schedule           []SavingsPeriod   `json:"schedule"`
	AlternativePlans   *AlternativePlans `json:"alternative_plans,omitempty"`
}

// SavingsPeriod is one row of the contribution schedule
type SavingsPeriod struct {
	Period           int     `json:"period"`
	Contribution     float64 `json:"contribution"`
	ProjectedBalance float64 `json:"projected_balance"`
}

// AlternativePlans is offered when the required contribution exceeds half
// of monthly income
type AlternativePlans struct {
	LongerTimeline AlternativePlan `json:"longer_timeline"`
	HigherReturn   AlternativePlan `json:"higher_return"`
}

// AlternativePlan summarizes one fallback option without a full schedule
type AlternativePlan struct {
	Months              int     `json:"months"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	MonthlyRequired     float64 `json:"monthly_required"`
	PercentOfIncome     float64 `json:"percent_of_income"`
}
