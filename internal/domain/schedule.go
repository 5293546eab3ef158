package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID          int
	Title       string
	Genre       string
	PosterUrl   string
	TicketPrice decimal.Decimal
	CreatedAt   time.Time
}

// Schedule is one published screening: a movie shown on a screen at a
// specific date and time slot. The screen bounds the valid seat number
// range [1, Capacity].
type Schedule struct {
	ID           int
	MovieID      int
	ScreenID     int
	ScreenNumber int
	Capacity     int
	ShowDate     time.Time
	TimeSlot     string
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}

type ScheduleRepository interface {
	// GetByScreeningKey resolves the (movie, date, time slot) screening key.
	// It fails with ErrScheduleNotFound if no published entry matches.
	GetByScreeningKey(ctx context.Context, movieID int, showDate time.Time, timeSlot string) (*Schedule, error)

	GetById(ctx context.Context, scheduleID int) (*Schedule, error)
	GetSchedulesByMovieId(ctx context.Context, movieID int) ([]Schedule, error)
}
