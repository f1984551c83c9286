package analytics

import (
	"strings"
	"testing"

	"github.com/sainaa19/StockWise/internal/models"
)

func holdingWithPL(symbol string, currentPrice, pct float64) models.Holding {
	return models.Holding{Symbol: symbol, CurrentPrice: currentPrice, ProfitLossPercent: &pct}
}

func holdingNoPL(symbol string, currentPrice float64) models.Holding {
	return models.Holding{Symbol: symbol, CurrentPrice: currentPrice}
}

// TestClassifyCascade walks the rule cascade through its branches,
// including the sticky-override interactions.
func TestClassifyCascade(t *testing.T) {
	tests := []struct {
		name       string
		holding    models.Holding
		allocation float64
		wantAction models.Action
		wantInMsg  []string
	}{
		{
			name:       "heavy concentration trims",
			holding:    holdingWithPL("TCS", 3800, 1),
			allocation: 40,
			wantAction: models.ActionTrim,
			wantInMsg:  []string{"very high concentration", "close to your buy level"},
		},
		{
			name:       "just below the trim boundary only cautions",
			holding:    holdingWithPL("TCS", 3800, 1),
			allocation: 39.999,
			wantAction: models.ActionHold,
			wantInMsg:  []string{"Keep a close eye"},
		},
		{
			name:       "tiny position tracks",
			holding:    holdingWithPL("PENNYLESS", 120, 1),
			allocation: 1.5,
			wantAction: models.ActionTrack,
			wantInMsg:  []string{"tiny position"},
		},
		{
			name:       "low price with meaningful weight is high risk",
			holding:    holdingWithPL("INTC", 45, 1),
			allocation: 15,
			wantAction: models.ActionHighRisk,
			wantInMsg:  []string{"low-price stock with a meaningful weight"},
		},
		{
			name:       "low price with small weight only cautions",
			holding:    holdingWithPL("INTC", 45, 1),
			allocation: 5,
			wantAction: models.ActionHold,
			wantInMsg:  []string{"penny zone"},
		},
		{
			name:       "strong gains sell",
			holding:    holdingWithPL("INFY", 1500, 15),
			allocation: 10,
			wantAction: models.ActionSell,
			wantInMsg:  []string{"strong gains"},
		},
		{
			name:       "high risk is sticky against sell",
			holding:    holdingWithPL("INTC", 45, 20),
			allocation: 15,
			wantAction: models.ActionHighRisk,
			wantInMsg:  []string{"meaningful weight", "strong gains"},
		},
		{
			name:       "reasonable profit downgrades track to hold",
			holding:    holdingWithPL("SMALL", 200, 6),
			allocation: 1,
			wantAction: models.ActionHold,
			wantInMsg:  []string{"tiny position", "reasonable profit"},
		},
		{
			name:       "reasonable profit leaves trim alone",
			holding:    holdingWithPL("TCS", 3800, 6),
			allocation: 45,
			wantAction: models.ActionTrim,
			wantInMsg:  []string{"reasonable profit"},
		},
		{
			name:       "deep drawdown exits even over high risk",
			holding:    holdingWithPL("INTC", 45, -20),
			allocation: 15,
			wantAction: models.ActionExit,
			wantInMsg:  []string{"drawdown is deep"},
		},
		{
			name:       "dip buys",
			holding:    holdingWithPL("INFY", 1300, -6),
			allocation: 10,
			wantAction: models.ActionBuy,
			wantInMsg:  []string{"below your buy price"},
		},
		{
			name:       "trim is sticky against buy",
			holding:    holdingWithPL("TCS", 3300, -6),
			allocation: 45,
			wantAction: models.ActionTrim,
			wantInMsg:  []string{"below your buy price"},
		},
		{
			name:       "near buy price holds",
			holding:    holdingWithPL("INFY", 1410, 1),
			allocation: 10,
			wantAction: models.ActionHold,
			wantInMsg:  []string{"close to your buy level"},
		},
		{
			name:       "missing P/L data stays neutral",
			holding:    holdingNoPL("NEW", 200),
			allocation: 10,
			wantAction: models.ActionHold,
			wantInMsg:  []string{"P/L data is not available"},
		},
		{
			name:       "missing P/L keeps allocation action",
			holding:    holdingNoPL("NEW", 200),
			allocation: 45,
			wantAction: models.ActionTrim,
			wantInMsg:  []string{"very high concentration", "P/L data is not available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Classify(tt.holding, tt.allocation)
			if rec.Action != tt.wantAction {
				t.Errorf("expected action %s, got %s (message: %s)", tt.wantAction, rec.Action, rec.Message)
			}
			for _, want := range tt.wantInMsg {
				if !strings.Contains(rec.Message, want) {
					t.Errorf("expected message to contain %q, got %q", want, rec.Message)
				}
			}
			if rec.Symbol != tt.holding.Symbol {
				t.Errorf("expected symbol %q, got %q", tt.holding.Symbol, rec.Symbol)
			}
			if rec.Allocation != tt.allocation {
				t.Errorf("expected allocation %g, got %g", tt.allocation, rec.Allocation)
			}
		})
	}
}

// TestClassifyDeterministic checks repeated classification of the same
// input yields the same result.
func TestClassifyDeterministic(t *testing.T) {
	h := holdingWithPL("INTC", 45, 20)
	first := Classify(h, 15)
	for i := 0; i < 10; i++ {
		again := Classify(h, 15)
		if again.Action != first.Action || again.Message != first.Message {
			t.Fatalf("classification not deterministic: %+v vs %+v", first, again)
		}
	}
}

// TestClassifyMessageOrderAndPercent checks rationale accumulation order
// and the percent passthrough.
func TestClassifyMessageOrderAndPercent(t *testing.T) {
	rec := Classify(holdingWithPL("INTC", 45, 20), 15)
	weightIdx := strings.Index(rec.Message, "meaningful weight")
	gainsIdx := strings.Index(rec.Message, "strong gains")
	if weightIdx < 0 || gainsIdx < 0 || weightIdx > gainsIdx {
		t.Errorf("messages should accumulate in evaluation order, got %q", rec.Message)
	}
	if rec.Percent == nil || *rec.Percent != 20 {
		t.Errorf("expected percent 20, got %v", rec.Percent)
	}

	rec = Classify(holdingNoPL("NEW", 200), 10)
	if rec.Percent != nil {
		t.Errorf("expected absent percent without P/L data, got %g", *rec.Percent)
	}
}

// TestRankRecommendations verifies the display ordering: descending on
// max(|percent|, allocation), stable ties, truncation.
func TestRankRecommendations(t *testing.T) {
	pct := func(v float64) *float64 { return &v }
	recs := []models.Recommendation{
		{Symbol: "A", Percent: pct(5), Allocation: 10},   // score 10
		{Symbol: "B", Percent: pct(-30), Allocation: 5},  // score 30
		{Symbol: "C", Percent: nil, Allocation: 20},      // score 20
		{Symbol: "D", Percent: pct(10), Allocation: 10},  // score 10, ties with A, after it
		{Symbol: "E", Percent: pct(50), Allocation: 2},   // score 50
	}

	ranked := RankRecommendations(recs, 0)
	wantOrder := []string{"E", "B", "C", "A", "D"}
	for i, want := range wantOrder {
		if ranked[i].Symbol != want {
			t.Fatalf("expected order %v, got position %d = %s", wantOrder, i, ranked[i].Symbol)
		}
	}

	top3 := RankRecommendations(recs, 3)
	if len(top3) != 3 || top3[2].Symbol != "C" {
		t.Errorf("expected top 3 [E B C], got %v", top3)
	}

	// Input slice must not be reordered.
	if recs[0].Symbol != "A" || recs[4].Symbol != "E" {
		t.Error("ranking should not mutate its input")
	}
}
