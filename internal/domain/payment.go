package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records one completed checkout against a booking. Card details are
// never stored beyond the last four digits; no real charge is made.
type Payment struct {
	ID           int
	BookingID    int
	CustomerID   int
	Amount       decimal.Decimal
	CardLastFour string
	Status       PaymentStatus
	PaymentDate  time.Time
	CreatedAt    time.Time
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetAll(ctx context.Context, pagination Pagination) ([]Payment, *Metadata, error)
}
