package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseHoldingsCSV parses a holdings import CSV into loosely-typed records,
// the same shape the JSON upload path produces.
// Required columns: symbol, quantity
// Optional columns: buy_price (or price), current_price, value
// Cell values stay as strings; the normalizer's permissive cast interprets
// them, so a bad number degrades that record instead of failing the upload.
// Rows with an empty symbol are skipped.
func ParseHoldingsCSV(r io.Reader) ([]any, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"symbol", "quantity"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}
	if _, hasBuy := colIdx["buy_price"]; !hasBuy {
		if _, hasPrice := colIdx["price"]; !hasPrice {
			return nil, fmt.Errorf("missing required column: buy_price or price")
		}
	}

	cell := func(record []string, col string) (string, bool) {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return "", false
		}
		v := strings.TrimSpace(record[idx])
		return v, v != ""
	}

	var records []any
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		symbol, ok := cell(record, "symbol")
		if !ok {
			continue
		}

		fields := map[string]any{"symbol": symbol}
		for _, col := range []string{"quantity", "buy_price", "price", "current_price", "value"} {
			if v, ok := cell(record, col); ok {
				fields[col] = v
			}
		}
		records = append(records, fields)
	}

	return records, nil
}
