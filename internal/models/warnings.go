package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = normalization, W2xxx = pricing.
type WarningCode string

const (
	WarnMalformedRecord WarningCode = "W1001" // record is not an object; normalized with zeroed fields
	WarnUnparsableField WarningCode = "W1002" // numeric field could not be interpreted; coerced to 0
	WarnRecordUnpriced  WarningCode = "W2001" // record has no symbol, price refresh skipped it
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
