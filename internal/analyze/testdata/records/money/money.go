// Package money is imported by records but never loaded as a pattern of its own.
package money

// Currency is an ISO 4217 code.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// Cents has no constants, it is not an enum.
type Cents int64
