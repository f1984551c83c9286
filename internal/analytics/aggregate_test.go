package analytics

import (
	"math"
	"testing"

	"github.com/sainaa19/StockWise/internal/models"
)

// TestAggregatePortfolioTotals verifies value conservation and that
// allocations sum to 100% for a portfolio with value.
func TestAggregatePortfolioTotals(t *testing.T) {
	records := []any{
		map[string]any{"symbol": "TCS", "quantity": 10, "buy_price": 3500.0, "current_price": 3800.0},
		map[string]any{"symbol": "INFY", "quantity": 5, "buy_price": 1400.0, "current_price": 1500.0},
		map[string]any{"symbol": "INTC", "quantity": 100, "buy_price": 48.0, "current_price": 45.0},
	}
	holdings, _ := NormalizeHoldings(records)
	snapshot := AggregatePortfolio(holdings)

	var sumValue, sumAllocation float64
	for _, h := range holdings {
		sumValue += h.Value
		sumAllocation += snapshot.Allocation(h)
	}

	if math.Abs(snapshot.TotalValue-sumValue) > 1e-9 {
		t.Errorf("total value %g does not match sum of holding values %g", snapshot.TotalValue, sumValue)
	}
	if math.Abs(sumAllocation-100) > 1e-9 {
		t.Errorf("allocations should sum to 100, got %g", sumAllocation)
	}

	wantCost := 10*3500.0 + 5*1400.0 + 100*48.0
	if math.Abs(snapshot.TotalCost-wantCost) > 1e-9 {
		t.Errorf("expected total cost %g, got %g", wantCost, snapshot.TotalCost)
	}
	if math.Abs(snapshot.TotalProfitLoss-(snapshot.TotalValue-wantCost)) > 1e-9 {
		t.Errorf("profit/loss %g inconsistent with totals", snapshot.TotalProfitLoss)
	}
	if snapshot.HoldingCount != 3 {
		t.Errorf("expected holding count 3, got %d", snapshot.HoldingCount)
	}
}

// TestAggregatePortfolioZeroGuards checks that empty and zero-cost
// portfolios produce zeros, never NaN.
func TestAggregatePortfolioZeroGuards(t *testing.T) {
	snapshot := AggregatePortfolio(nil)
	if snapshot.TotalValue != 0 || snapshot.TotalProfitLossPercent != 0 {
		t.Errorf("expected zeroed snapshot for empty portfolio, got %+v", snapshot)
	}

	free := models.Holding{Symbol: "FREE", Quantity: 3, BuyPrice: 0, CurrentPrice: 0}
	snapshot = AggregatePortfolio([]models.Holding{free})
	if math.IsNaN(snapshot.TotalProfitLossPercent) {
		t.Error("zero total cost must not produce NaN percent")
	}
	if snapshot.TotalProfitLossPercent != 0 {
		t.Errorf("expected 0%% with zero cost, got %g", snapshot.TotalProfitLossPercent)
	}
	if alloc := snapshot.Allocation(free); alloc != 0 {
		t.Errorf("expected 0 allocation with zero total value, got %g", alloc)
	}
}

// TestAggregatePortfolioOrderIndependent checks the reduction is
// insensitive to holding order.
func TestAggregatePortfolioOrderIndependent(t *testing.T) {
	a := models.Holding{Symbol: "A", Quantity: 2, BuyPrice: 10, CurrentPrice: 12, Value: 24}
	b := models.Holding{Symbol: "B", Quantity: 1, BuyPrice: 100, CurrentPrice: 90, Value: 90}
	c := models.Holding{Symbol: "C", Quantity: 7, BuyPrice: 3, CurrentPrice: 3, Value: 21}

	forward := AggregatePortfolio([]models.Holding{a, b, c})
	reverse := AggregatePortfolio([]models.Holding{c, b, a})

	if forward != reverse {
		t.Errorf("aggregation should be order independent: %+v vs %+v", forward, reverse)
	}
}
