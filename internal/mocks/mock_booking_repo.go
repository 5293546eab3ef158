package mocks

import (
	"context"
	"time"

	"github.com/cinehall/cinema-booking-system/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	ReserveFunc                   func(ctx context.Context, schedule *domain.Schedule, customerID int, seatNumbers []int) (*domain.Booking, error)
	GetOccupiedSeatNumbersFunc    func(ctx context.Context, scheduleID int) ([]int, error)
	GetBookingByIdFunc            func(ctx context.Context, bookingID int) (*domain.Booking, error)
	GetBookingsByCustomerIdFunc   func(ctx context.Context, customerID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error)
	UpdateSeatStatusFunc          func(ctx context.Context, bookingID, seatID int, from, to domain.SeatStatus, remarks *string) error
	GetPendingCancellationsFunc   func(ctx context.Context) ([]domain.CancellationRequest, error)
	GetSeatStatusForScreeningFunc func(ctx context.Context, screenNumber int, showDate time.Time, timeSlot string, seatNumber int) (domain.SeatStatus, error)
	GetEarningsByMovieAndDateFunc func(ctx context.Context, movieID int, showDate time.Time) ([]domain.SlotEarnings, error)
}

func (m *MockBookingRepo) Reserve(ctx context.Context, schedule *domain.Schedule, customerID int, seatNumbers []int) (*domain.Booking, error) {
	return m.ReserveFunc(ctx, schedule, customerID, seatNumbers)
}

func (m *MockBookingRepo) GetOccupiedSeatNumbers(ctx context.Context, scheduleID int) ([]int, error) {
	return m.GetOccupiedSeatNumbersFunc(ctx, scheduleID)
}

func (m *MockBookingRepo) GetBookingById(ctx context.Context, bookingID int) (*domain.Booking, error) {
	return m.GetBookingByIdFunc(ctx, bookingID)
}

func (m *MockBookingRepo) GetBookingsByCustomerId(ctx context.Context, customerID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {
	return m.GetBookingsByCustomerIdFunc(ctx, customerID, pagination)
}

func (m *MockBookingRepo) UpdateSeatStatus(ctx context.Context, bookingID, seatID int, from, to domain.SeatStatus, remarks *string) error {
	return m.UpdateSeatStatusFunc(ctx, bookingID, seatID, from, to, remarks)
}

func (m *MockBookingRepo) GetPendingCancellations(ctx context.Context) ([]domain.CancellationRequest, error) {
	return m.GetPendingCancellationsFunc(ctx)
}

func (m *MockBookingRepo) GetSeatStatusForScreening(ctx context.Context, screenNumber int, showDate time.Time, timeSlot string, seatNumber int) (domain.SeatStatus, error) {
	return m.GetSeatStatusForScreeningFunc(ctx, screenNumber, showDate, timeSlot, seatNumber)
}

func (m *MockBookingRepo) GetEarningsByMovieAndDate(ctx context.Context, movieID int, showDate time.Time) ([]domain.SlotEarnings, error) {
	return m.GetEarningsByMovieAndDateFunc(ctx, movieID, showDate)
}
