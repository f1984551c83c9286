package analytics

import (
	"errors"
	"math"
	"testing"
)

// TestProjectSavingsBaseline checks the 24-month 4% fixture: the payment
// solves the ordinary-annuity formula and the schedule lands on the goal.
func TestProjectSavingsBaseline(t *testing.T) {
	plan, err := ProjectSavings(5000, 60000, 24, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	monthlyRate := 4.0 / 100 / 12
	wantRequired := 60000 * monthlyRate / (math.Pow(1+monthlyRate, 24) - 1)
	if math.Abs(plan.MonthlyRequired-wantRequired) > 1e-9 {
		t.Errorf("expected monthly contribution %g, got %g", wantRequired, plan.MonthlyRequired)
	}
	// Sanity-pin the regime: roughly 2.4k/month, just under half of income.
	if plan.MonthlyRequired < 2400 || plan.MonthlyRequired > 2410 {
		t.Errorf("monthly contribution out of expected range: %g", plan.MonthlyRequired)
	}
	wantPercent := plan.MonthlyRequired / 5000 * 100
	if math.Abs(plan.PercentOfIncome-wantPercent) > 1e-9 {
		t.Errorf("expected percent of income %g, got %g", wantPercent, plan.PercentOfIncome)
	}

	if len(plan.Schedule) != 24 {
		t.Fatalf("expected 24 schedule periods, got %d", len(plan.Schedule))
	}
	last := plan.Schedule[len(plan.Schedule)-1]
	if last.Period != 24 {
		t.Errorf("expected last period 24, got %d", last.Period)
	}
	if math.Abs(last.ProjectedBalance-60000) > 1e-6 {
		t.Errorf("expected final balance to hit the goal, got %g", last.ProjectedBalance)
	}

	if math.Abs(plan.TotalContributions-plan.MonthlyRequired*24) > 1e-9 {
		t.Errorf("total contributions inconsistent: %g", plan.TotalContributions)
	}
	if math.Abs(plan.ProjectedReturns-(60000-plan.TotalContributions)) > 1e-9 {
		t.Errorf("projected returns inconsistent: %g", plan.ProjectedReturns)
	}

	// 48% of income: under the affordability threshold, no alternatives.
	if plan.AlternativePlans != nil {
		t.Errorf("expected no alternative plans at %.1f%% of income", plan.PercentOfIncome)
	}
}

// TestProjectSavingsZeroRate checks the degenerate zero-rate split, which
// must stay exact.
func TestProjectSavingsZeroRate(t *testing.T) {
	plan, err := ProjectSavings(2000, 24000, 24, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.MonthlyRequired != 1000 {
		t.Errorf("expected exactly 1000/month, got %g", plan.MonthlyRequired)
	}
	if plan.TotalContributions != 24000 {
		t.Errorf("expected total contributions 24000, got %g", plan.TotalContributions)
	}
	if plan.ProjectedReturns != 0 {
		t.Errorf("expected zero projected returns, got %g", plan.ProjectedReturns)
	}
	for i, period := range plan.Schedule {
		want := 1000 * float64(i+1)
		if period.ProjectedBalance != want {
			t.Fatalf("period %d: expected balance %g, got %g", period.Period, want, period.ProjectedBalance)
		}
		if period.Contribution != 1000 {
			t.Fatalf("period %d: expected contribution 1000, got %g", period.Period, period.Contribution)
		}
	}
}

// TestProjectSavingsAlternatives checks the affordability fallback above
// 50% of income.
func TestProjectSavingsAlternatives(t *testing.T) {
	plan, err := ProjectSavings(1000, 60000, 24, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.PercentOfIncome <= 50 {
		t.Fatalf("fixture should exceed the affordability threshold, got %g%%", plan.PercentOfIncome)
	}
	alts := plan.AlternativePlans
	if alts == nil {
		t.Fatal("expected alternative plans above the affordability threshold")
	}

	if alts.LongerTimeline.Months != 36 || alts.LongerTimeline.AnnualReturnPercent != 4 {
		t.Errorf("longer timeline should add 12 months at the same rate, got %+v", alts.LongerTimeline)
	}
	if alts.HigherReturn.Months != 24 || alts.HigherReturn.AnnualReturnPercent != 6 {
		t.Errorf("higher return should add 2 points at the same horizon, got %+v", alts.HigherReturn)
	}
	if alts.LongerTimeline.MonthlyRequired >= plan.MonthlyRequired {
		t.Error("a longer timeline should lower the required contribution")
	}
	if alts.HigherReturn.MonthlyRequired >= plan.MonthlyRequired {
		t.Error("a higher return should lower the required contribution")
	}
}

// TestProjectSavingsZeroRateAlternatives checks the alternatives reuse the
// zero-rate guard.
func TestProjectSavingsZeroRateAlternatives(t *testing.T) {
	plan, err := ProjectSavings(100, 24000, 24, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alts := plan.AlternativePlans
	if alts == nil {
		t.Fatal("expected alternative plans")
	}
	// Longer timeline keeps the zero rate: straight split over 36 months.
	if alts.LongerTimeline.MonthlyRequired != 24000.0/36 {
		t.Errorf("expected straight split at zero rate, got %g", alts.LongerTimeline.MonthlyRequired)
	}
	if math.IsNaN(alts.LongerTimeline.MonthlyRequired) || math.IsNaN(alts.HigherReturn.MonthlyRequired) {
		t.Error("alternative plans must never produce NaN")
	}
}

// TestProjectSavingsInvalidInputs checks out-of-domain parameters fail with
// a typed error naming the field.
func TestProjectSavingsInvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		income    float64
		goal      float64
		months    int
		rate      float64
		wantField string
	}{
		{"zero income", 0, 60000, 24, 4, "monthly_income"},
		{"negative income", -1, 60000, 24, 4, "monthly_income"},
		{"zero goal", 5000, 0, 24, 4, "goal_amount"},
		{"negative goal", 5000, -100, 24, 4, "goal_amount"},
		{"zero months", 5000, 60000, 0, 4, "months"},
		{"negative months", 5000, 60000, -6, 4, "months"},
		{"negative rate", 5000, 60000, 24, -1, "annual_return_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ProjectSavings(tt.income, tt.goal, tt.months, tt.rate)
			if plan != nil {
				t.Fatal("expected no plan on invalid input")
			}
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("expected offending field %q, got %q", tt.wantField, invalid.Field)
			}
		})
	}
}
