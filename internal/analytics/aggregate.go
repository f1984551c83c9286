package analytics

import "github.com/sainaa19/StockWise/internal/models"

// AggregatePortfolio reduces a set of normalized holdings into portfolio
// totals. Order-independent, O(n), recomputed on every call. Every division
// is guarded so an empty or zero-cost portfolio yields 0, never NaN.
func AggregatePortfolio(holdings []models.Holding) models.PortfolioSnapshot {
	snapshot := models.PortfolioSnapshot{HoldingCount: len(holdings)}
	for _, h := range holdings {
		snapshot.TotalValue += h.Value
		snapshot.TotalCost += h.Quantity * h.BuyPrice
	}
	snapshot.TotalProfitLoss = snapshot.TotalValue - snapshot.TotalCost
	if snapshot.TotalCost != 0 {
		snapshot.TotalProfitLossPercent = snapshot.TotalProfitLoss / snapshot.TotalCost * 100
	}
	return snapshot
}
