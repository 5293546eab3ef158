package mocks

import (
	"context"
	"time"

	"github.com/cinehall/cinema-booking-system/internal/domain"
)

type MockScheduleRepo struct {
	domain.ScheduleRepository
	GetByScreeningKeyFunc     func(ctx context.Context, movieID int, showDate time.Time, timeSlot string) (*domain.Schedule, error)
	GetByIdFunc               func(ctx context.Context, scheduleID int) (*domain.Schedule, error)
	GetSchedulesByMovieIdFunc func(ctx context.Context, movieID int) ([]domain.Schedule, error)
}

func (m *MockScheduleRepo) GetByScreeningKey(ctx context.Context, movieID int, showDate time.Time, timeSlot string) (*domain.Schedule, error) {
	return m.GetByScreeningKeyFunc(ctx, movieID, showDate, timeSlot)
}

func (m *MockScheduleRepo) GetById(ctx context.Context, scheduleID int) (*domain.Schedule, error) {
	return m.GetByIdFunc(ctx, scheduleID)
}

func (m *MockScheduleRepo) GetSchedulesByMovieId(ctx context.Context, movieID int) ([]domain.Schedule, error) {
	return m.GetSchedulesByMovieIdFunc(ctx, movieID)
}
