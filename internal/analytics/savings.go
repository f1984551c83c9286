package analytics

import (
	"math"

	"github.com/sainaa19/StockWise/internal/models"
)

// affordabilityThresholdPct triggers alternative plans when the required
// contribution exceeds this share of monthly income.
const affordabilityThresholdPct = 50

// ProjectSavings computes the monthly contribution needed to reach a savings
// goal, the full contribution schedule, and fallback plans when the plan is
// unaffordable. Contributions follow the ordinary-annuity convention: the
// balance compounds first, then the period's contribution is credited.
func ProjectSavings(monthlyIncome, goalAmount float64, months int, annualReturnPercent float64) (*models.SavingsPlan, error) {
	switch {
	case monthlyIncome <= 0 || !isFinite(monthlyIncome):
		return nil, &InvalidInputError{Field: "monthly_income", Value: monthlyIncome}
	case goalAmount <= 0 || !isFinite(goalAmount):
		return nil, &InvalidInputError{Field: "goal_amount", Value: goalAmount}
	case months <= 0:
		return nil, &InvalidInputError{Field: "months", Value: float64(months)}
	case annualReturnPercent < 0 || !isFinite(annualReturnPercent):
		return nil, &InvalidInputError{Field: "annual_return_percent", Value: annualReturnPercent}
	}

	monthlyRate := annualReturnPercent / 100 / 12
	monthlyRequired := requiredContribution(goalAmount, months, monthlyRate)
	totalContributions := monthlyRequired * float64(months)

	plan := &models.SavingsPlan{
		MonthlyRequired:    monthlyRequired,
		PercentOfIncome:    monthlyRequired / monthlyIncome * 100,
		TotalContributions: totalContributions,
		ProjectedReturns:   goalAmount - totalContributions,
		Schedule:           buildSchedule(monthlyRequired, months, monthlyRate),
	}

	if plan.PercentOfIncome > affordabilityThresholdPct {
		plan.AlternativePlans = &models.AlternativePlans{
			LongerTimeline: alternativePlan(monthlyIncome, goalAmount, months+12, annualReturnPercent),
			HigherReturn:   alternativePlan(monthlyIncome, goalAmount, months, annualReturnPercent+2),
		}
	}

	return plan, nil
}

// requiredContribution solves the ordinary-annuity future-value formula for
// the payment. The zero-rate case degenerates to a straight split so the
// compound formula never divides by zero.
func requiredContribution(goalAmount float64, months int, monthlyRate float64) float64 {
	if monthlyRate == 0 {
		return goalAmount / float64(months)
	}
	return goalAmount * monthlyRate / (math.Pow(1+monthlyRate, float64(months)) - 1)
}

func buildSchedule(contribution float64, months int, monthlyRate float64) []models.SavingsPeriod {
	schedule := make([]models.SavingsPeriod, 0, months)
	balance := 0.0
	for period := 1; period <= months; period++ {
		balance = balance*(1+monthlyRate) + contribution
		schedule = append(schedule, models.SavingsPeriod{
			Period:           period,
			Contribution:     contribution,
			ProjectedBalance: balance,
		})
	}
	return schedule
}

func alternativePlan(monthlyIncome, goalAmount float64, months int, annualReturnPercent float64) models.AlternativePlan {
	monthlyRate := annualReturnPercent / 100 / 12
	required := requiredContribution(goalAmount, months, monthlyRate)
	return models.AlternativePlan{
		Months:              months,
		AnnualReturnPercent: annualReturnPercent,
		MonthlyRequired:     required,
		PercentOfIncome:     required / monthlyIncome * 100,
	}
}
