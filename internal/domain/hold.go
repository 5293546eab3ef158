package domain

import (
	"time"

	"github.com/google/uuid"
)

// SeatHold is a short-lived, advisory claim on seats while a customer
// completes payment. Holds live in Redis and expire by TTL; the reservation
// transaction remains the source of truth.
type SeatHold struct {
	ID          string
	ScheduleID  int
	SeatNumbers []int
	CreatedAt   time.Time
}

func NewSeatHold(scheduleID int, seatNumbers []int) SeatHold {
	return SeatHold{
		ID:          uuid.New().String(),
		ScheduleID:  scheduleID,
		SeatNumbers: seatNumbers,
		CreatedAt:   time.Now(),
	}
}
