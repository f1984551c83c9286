package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sainaa19/StockWise/internal/models"
)

// Field aliases accepted by the normalizer. Uploaded records come from CSV
// imports, JSON bodies and older localStorage exports, so both snake_case
// and camelCase spellings show up in the wild.
var (
	symbolKeys       = []string{"symbol", "ticker"}
	quantityKeys     = []string{"quantity", "qty"}
	buyPriceKeys     = []string{"buy_price", "buyPrice", "price"}
	currentPriceKeys = []string{"current_price", "currentPrice"}
	valueKeys        = []string{"value"}
	profitLossKeys   = []string{"profit_loss", "profitLoss"}
	plPercentKeys    = []string{"profit_loss_percent", "profitLossPercent"}
)

// DecodeRecords parses a JSON body into a sequence of loosely-typed records.
// A body that is not a JSON array fails with *ParseError; the shape of the
// individual elements is not validated here.
func DecodeRecords(data []byte) ([]any, error) {
	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	if records == nil {
		return nil, &ParseError{Err: errors.New("expected a JSON array of records")}
	}
	return records, nil
}

// NormalizeHoldings converts loosely-typed records into canonical holdings.
// Missing numeric fields coerce to 0, except current price, which falls back
// to the buy price so unrealized P/L reads as zero until a live price
// arrives. Individually malformed records degrade to zeroed fields and emit
// a warning; they never abort the batch.
func NormalizeHoldings(records []any) ([]models.Holding, []models.Warning) {
	holdings := make([]models.Holding, 0, len(records))
	var warnings []models.Warning
	for i, rec := range records {
		h, w := normalizeRecord(i, rec)
		holdings = append(holdings, h)
		warnings = append(warnings, w...)
	}
	return holdings, warnings
}

// NormalizeRecord normalizes a single record. Warning messages reference
// record index 0.
func NormalizeRecord(rec any) (models.Holding, []models.Warning) {
	return normalizeRecord(0, rec)
}

func normalizeRecord(idx int, rec any) (models.Holding, []models.Warning) {
	var warnings []models.Warning

	fields, ok := rec.(map[string]any)
	if !ok {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnMalformedRecord,
			Message: fmt.Sprintf("record %d is not an object, normalized with zeroed fields", idx),
		})
		return models.Holding{}, warnings
	}

	warn := func(key string) {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnUnparsableField,
			Message: fmt.Sprintf("record %d: field %q is not numeric, treated as missing", idx, key),
		})
	}

	quantity, _ := numericField(fields, warn, quantityKeys)
	buyPrice, _ := numericField(fields, warn, buyPriceKeys)
	quantity = clampNonNegative(quantity)
	buyPrice = clampNonNegative(buyPrice)

	currentPrice, ok := numericField(fields, warn, currentPriceKeys)
	if !ok {
		currentPrice = buyPrice
	}
	currentPrice = clampNonNegative(currentPrice)

	value, ok := numericField(fields, warn, valueKeys)
	if !ok {
		value = quantity * currentPrice
	}
	value = finiteOr(value, 0)

	profitLoss, ok := numericField(fields, warn, profitLossKeys)
	if !ok {
		profitLoss = value - quantity*buyPrice
	}
	profitLoss = finiteOr(profitLoss, 0)

	// Absent stays absent: a zero buy price gives no base to measure
	// against, and the classifier treats "no data" differently from "0%".
	var plPercent *float64
	if pct, ok := numericField(fields, warn, plPercentKeys); ok {
		plPercent = &pct
	} else if buyPrice != 0 {
		pct := (currentPrice - buyPrice) / buyPrice * 100
		if isFinite(pct) {
			plPercent = &pct
		}
	}

	return models.Holding{
		Symbol:            stringField(fields, symbolKeys),
		Quantity:          quantity,
		BuyPrice:          buyPrice,
		CurrentPrice:      currentPrice,
		Value:             value,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: plPercent,
	}, warnings
}

// numericField returns the first alias present in the record as a float64.
// Absent and null values report ok=false silently; present values that
// cannot be interpreted as a finite number report ok=false through warn.
func numericField(fields map[string]any, warn func(key string), keys []string) (float64, bool) {
	for _, key := range keys {
		v, present := fields[key]
		if !present || v == nil {
			continue
		}
		f, ok := castFloat(v)
		if !ok || !isFinite(f) {
			warn(key)
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func stringField(fields map[string]any, keys []string) string {
	for _, key := range keys {
		v, present := fields[key]
		if !present || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
		return fmt.Sprint(v)
	}
	return ""
}

// castFloat is the permissive numeric cast: numbers of any width,
// json.Number and numeric strings all convert; everything else fails.
func castFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finiteOr(f, fallback float64) float64 {
	if isFinite(f) {
		return f
	}
	return fallback
}

func clampNonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
