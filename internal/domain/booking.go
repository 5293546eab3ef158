package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SeatStatus is the per-seat state within a booking. A booking is never
// deleted; only the statuses of its seats change.
type SeatStatus string

const (
	SeatStatusBooked        SeatStatus = "booked"
	SeatStatusPendingCancel SeatStatus = "pending_cancel"
	SeatStatusReleased      SeatStatus = "released"
)

// Occupies reports whether a seat in this status still holds its seat number
// for the screening. A pending cancellation keeps the seat occupied until an
// administrator approves it.
func (s SeatStatus) Occupies() bool {
	return s == SeatStatusBooked || s == SeatStatusPendingCancel
}

// CanTransitionTo encodes the cancellation state machine:
// booked -> pending_cancel -> (released | booked).
func (s SeatStatus) CanTransitionTo(target SeatStatus) bool {
	switch s {
	case SeatStatusBooked:
		return target == SeatStatusPendingCancel
	case SeatStatusPendingCancel:
		return target == SeatStatusReleased || target == SeatStatusBooked
	default:
		return false
	}
}

type Booking struct {
	ID         int
	CustomerID int
	ScheduleID int
	Seats      []SeatRecord
	CreatedAt  time.Time
}

type SeatRecord struct {
	ID         int
	BookingID  int
	ScheduleID int
	SeatNumber int
	Status     SeatStatus
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookingSummary is the customer-facing view of one booking, joined with the
// movie and screening it belongs to.
type BookingSummary struct {
	BookingID    int
	MovieID      int
	MovieTitle   string
	PosterUrl    string
	Genre        string
	ScreenNumber int
	ShowDate     time.Time
	TimeSlot     string
	Seats        []SeatRecord
	CreatedAt    time.Time
}

// CancellationRequest is one seat awaiting an administrator decision.
type CancellationRequest struct {
	BookingID   int
	SeatID      int
	CustomerID  int
	MovieTitle  string
	ShowDate    time.Time
	TimeSlot    string
	SeatNumber  int
	Remarks     string
	RequestedAt time.Time
}

// SlotEarnings aggregates sold seats and revenue for one time slot of a
// movie on a given date.
type SlotEarnings struct {
	TimeSlot  string
	SeatsSold int
	Amount    decimal.Decimal
}

type BookingRepository interface {
	// Reserve atomically creates a booking with one seat record per requested
	// seat number. The check-then-commit sequence is serialized per schedule;
	// it fails with ErrSeatUnavailable if any requested seat is occupied,
	// ErrInvalidSeat if a seat number is outside the screen capacity, and
	// never commits partially.
	Reserve(ctx context.Context, schedule *Schedule, customerID int, seatNumbers []int) (*Booking, error)

	// GetOccupiedSeatNumbers returns the seat numbers held by booked or
	// pending-cancel seat records for the schedule, in ascending order.
	GetOccupiedSeatNumbers(ctx context.Context, scheduleID int) ([]int, error)

	GetBookingById(ctx context.Context, bookingID int) (*Booking, error)
	GetBookingsByCustomerId(ctx context.Context, customerID int, pagination Pagination) ([]BookingSummary, *Metadata, error)

	// UpdateSeatStatus moves one seat record from an expected status to a new
	// one. It fails with ErrRecordNotFound if the booking/seat pair is unknown
	// and ErrInvalidSeatTransition if the seat is not in the expected status.
	UpdateSeatStatus(ctx context.Context, bookingID, seatID int, from, to SeatStatus, remarks *string) error

	GetPendingCancellations(ctx context.Context) ([]CancellationRequest, error)
	GetSeatStatusForScreening(ctx context.Context, screenNumber int, showDate time.Time, timeSlot string, seatNumber int) (SeatStatus, error)
	GetEarningsByMovieAndDate(ctx context.Context, movieID int, showDate time.Time) ([]SlotEarnings, error)
}
