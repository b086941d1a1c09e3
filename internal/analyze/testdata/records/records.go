package records

import (
	"iter"
	"time"

	"csv-serializer/internal/analyze/testdata/records/money"
)

// Product is an individual item available for sale.
type Product struct {
	ID          int64     `csv:"id"`
	SKU         string    `csv:"sku"`
	Description *string   `csv:"description"`
	PriceCents  int64     `csv:"price_cents,type=int|float"`
	Available   bool      `csv:"available"`
	Tags        []string  `csv:"tags"`
	CreatedAt   time.Time `csv:"created_at"`
	Internal    string    `csv:"-"`
	Legacy      string    `csv:"legacy,type=-"`
	secret      string
}

// Order is a transaction made by a customer.
type Order struct {
	ID        int64
	Status    OrderStatus
	Priority  *Priority
	ShippedOn Stamp
	Lines     iter.Seq[Line]
	Metadata  any
	Timeout   time.Duration
	Next      *Order
}

// Line is a product line within an order.
type Line struct {
	ProductID int64
	Quantity  int
	Currency  money.Currency
	Total     money.Cents
}

// OrderStatus is a string enum.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Priority is an integer enum.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityHigh
)

// Stamp is a date implementation embedding time.Time.
type Stamp struct {
	time.Time
}

// Clock is an interface extending the date-time capability.
type Clock interface {
	Format(layout string) string
	Unix() int64
	Location() *time.Location
}

// Code is a string type without constants, it is not an enum.
type Code string
