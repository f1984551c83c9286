package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/sainaa19/StockWise/internal/models"
)

// Rule thresholds. Allocation figures are percentages of total portfolio
// value, pct figures are profit/loss percentages.
const (
	heavyConcentrationPct = 40
	highConcentrationPct  = 20
	tinyPositionPct       = 2
	lowPriceLevel         = 50
	lowPriceRiskWeightPct = 10
	strongGainPct         = 12
	modestGainPct         = 4
	deepDrawdownPct       = -12
	dipPct                = -4
)

const fallbackMessage = "Review this stock periodically and align your decision with your risk profile, time horizon, and conviction."

// ruleInput is the immutable view a rule evaluates against. current carries
// the action accumulated by earlier rules so sticky overrides (HIGH_RISK,
// EXIT) stay explicit in each rule's own condition.
type ruleInput struct {
	holding    models.Holding
	allocation float64
	current    models.Action
}

// ruleOutcome is what one rule contributes: an optional action override
// (empty means keep the current action) and an optional rationale message.
type ruleOutcome struct {
	override models.Action
	message  string
}

type rule struct {
	name string
	eval func(ruleInput) ruleOutcome
}

// cascade is evaluated top to bottom; later rules may override the action,
// but every matched rule's message is kept so the final recommendation stays
// auditable.
var cascade = []rule{
	{name: "concentration", eval: concentrationRule},
	{name: "low-price", eval: lowPriceRule},
	{name: "profit-loss", eval: profitLossRule},
}

// Classify maps one holding plus its allocation share to a recommendation
// by folding the rule cascade. Deterministic: the same input always yields
// the same action and message.
func Classify(h models.Holding, allocationPercent float64) models.Recommendation {
	action := models.ActionHold
	var messages []string

	for _, r := range cascade {
		out := r.eval(ruleInput{holding: h, allocation: allocationPercent, current: action})
		if out.override != "" {
			action = out.override
		}
		if out.message != "" {
			messages = append(messages, out.message)
		}
	}

	if len(messages) == 0 {
		messages = append(messages, fallbackMessage)
	}

	return models.Recommendation{
		Symbol:     h.Symbol,
		Percent:    presentPercent(h),
		Allocation: allocationPercent,
		Action:     action,
		Message:    joinMessages(messages),
	}
}

// concentrationRule flags position sizing issues before anything else so
// later P/L rules can respect TRIM/TRACK stickiness.
func concentrationRule(in ruleInput) ruleOutcome {
	switch {
	case in.allocation >= heavyConcentrationPct:
		return ruleOutcome{
			override: models.ActionTrim,
			message: fmt.Sprintf("This stock is ~%.1f%% of your total portfolio, which is a very high concentration. "+
				"Avoid adding more and consider trimming gradually to reduce risk.", in.allocation),
		}
	case in.allocation >= highConcentrationPct:
		return ruleOutcome{
			message: fmt.Sprintf("This holding is ~%.1f%% of your portfolio. Keep a close eye on it and avoid oversizing further.", in.allocation),
		}
	case in.allocation > 0 && in.allocation <= tinyPositionPct:
		return ruleOutcome{
			override: models.ActionTrack,
			message: fmt.Sprintf("This is a tiny position (~%.1f%% of portfolio). You can treat it as a tracking position "+
				"and only increase size if you develop high conviction.", in.allocation),
		}
	}
	return ruleOutcome{}
}

// lowPriceRule covers small-cap / penny-zone prices. A meaningful weight at
// a low price escalates to HIGH_RISK, overriding TRIM or TRACK.
func lowPriceRule(in ruleInput) ruleOutcome {
	if in.holding.CurrentPrice >= lowPriceLevel {
		return ruleOutcome{}
	}
	if in.allocation >= lowPriceRiskWeightPct {
		return ruleOutcome{
			override: models.ActionHighRisk,
			message: "This is a low-price stock with a meaningful weight in your portfolio. " +
				"Be very careful with position size and avoid putting more capital here.",
		}
	}
	return ruleOutcome{
		message: "The stock price is in the low range (small-cap / penny zone). " +
			"Focus on risk management and avoid making it a huge chunk of your portfolio.",
	}
}

// profitLossRule branches on the P/L percentage when it exists. HIGH_RISK is
// sticky against SELL and BUY, TRIM is sticky against BUY, and a deep
// drawdown overrides everything with EXIT.
func profitLossRule(in ruleInput) ruleOutcome {
	pct := presentPercent(in.holding)
	if pct == nil {
		return ruleOutcome{
			message: "P/L data is not available yet (no current price update). " +
				"Treat this as a neutral position and focus mainly on your allocation and risk.",
		}
	}

	switch {
	case *pct >= strongGainPct:
		out := ruleOutcome{
			message: "You are sitting on strong gains. Consider booking partial profits instead of waiting for the absolute top.",
		}
		if in.current != models.ActionHighRisk {
			out.override = models.ActionSell
		}
		return out
	case *pct >= modestGainPct:
		out := ruleOutcome{
			message: "Your position is in reasonable profit. Holding is fine; just monitor news and quarterly results.",
		}
		if in.current == models.ActionTrack {
			out.override = models.ActionHold
		}
		return out
	case *pct <= deepDrawdownPct:
		return ruleOutcome{
			override: models.ActionExit,
			message: "The drawdown is deep. Re-check your original reason for buying this stock. " +
				"If the thesis is broken, exiting may be safer than averaging down blindly.",
		}
	case *pct <= dipPct:
		out := ruleOutcome{
			message: "The stock is below your buy price. If fundamentals are still strong, " +
				"you may consider averaging carefully with a clear stop-loss in mind.",
		}
		if in.current != models.ActionTrim && in.current != models.ActionHighRisk {
			out.override = models.ActionBuy
		}
		return out
	}
	return ruleOutcome{
		message: "The price is close to your buy level. There is no urgent action required purely based on P/L.",
	}
}

// RankRecommendations orders recommendations by importance, descending on
// max(|percent|, allocation), ties broken by input order. A positive limit
// truncates the result.
func RankRecommendations(recs []models.Recommendation, limit int) []models.Recommendation {
	ranked := make([]models.Recommendation, len(recs))
	copy(ranked, recs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rankScore(ranked[i]) > rankScore(ranked[j])
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rankScore(r models.Recommendation) float64 {
	pct := 0.0
	if r.Percent != nil {
		pct = math.Abs(*r.Percent)
	}
	return math.Max(pct, r.Allocation)
}

func presentPercent(h models.Holding) *float64 {
	if h.ProfitLossPercent == nil || !isFinite(*h.ProfitLossPercent) {
		return nil
	}
	return h.ProfitLossPercent
}

func joinMessages(messages []string) string {
	joined := messages[0]
	for _, m := range messages[1:] {
		joined += " " + m
	}
	return joined
}
