package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/redis/go-redis/v9"
)

// CreateReservation commits a new booking only if every requested seat is
// free. The whole request is rejected when any seat is taken; the caller must
// refresh availability and let the customer reselect.
func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showDate, err := parseShowDate(input.Date)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	schedule, err := app.scheduleRepo.GetByScreeningKey(r.Context(), input.MovieId, showDate, input.TimeSlot)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sessionID := app.sessionManager.Token(r.Context())

	err = app.checkSeatHoldOwnership(r.Context(), schedule.ID, input.SeatNumbers, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatHeld):
			logger.Warn("reservation rejected: seats held by another session", "schedule_id", schedule.ID)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	booking, err := app.bookingRepo.Reserve(r.Context(), schedule, input.CustomerId, input.SeatNumbers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatUnavailable):
			logger.Warn("reservation conflict: seats already occupied", "schedule_id", schedule.ID)
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrInvalidSeat):
			app.unprocessableEntityResponse(w, r, err)
		case errors.Is(err, domain.ErrScheduleNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.releaseSeatHolds(r.Context(), schedule.ID, input.SeatNumbers)

	resp := toBookingResponse(booking, input.MovieId, input.Date, input.TimeSlot)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkSeatHoldOwnership rejects a reservation when any requested seat is
// currently held by a different session. Holds are advisory; the reservation
// transaction remains the authority on occupancy.
func (app *Application) checkSeatHoldOwnership(ctx context.Context, scheduleID int, seatNumbers []int, sessionID string) error {
	for _, seatNumber := range seatNumbers {
		owner, err := app.redis.Get(ctx, holdSeatKey(scheduleID, seatNumber)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return err
		}

		if owner != sessionID {
			return domain.ErrSeatHeld
		}
	}

	return nil
}

func (app *Application) GetCustomerBookings(w http.ResponseWriter, r *http.Request) {
	customerID, err := app.readIntParam(r, "customerID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	pagination := app.readPagination(r)

	bookings, metadata, err := app.bookingRepo.GetBookingsByCustomerId(r.Context(), customerID, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CustomerBookingsResponse{
		Bookings: toApiCustomerBookings(bookings),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking *domain.Booking, movieID int, date, timeSlot string) api.BookingResponse {
	return api.BookingResponse{
		BookingId:  booking.ID,
		CustomerId: booking.CustomerID,
		MovieId:    movieID,
		Date:       date,
		TimeSlot:   timeSlot,
		Seats:      toApiBookingSeats(booking.Seats),
		CreatedAt:  booking.CreatedAt,
	}
}

func toApiBookingSeats(seats []domain.SeatRecord) []api.BookingSeat {
	apiSeats := make([]api.BookingSeat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.BookingSeat{
			SeatId:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Status:     string(seat.Status),
			Remarks:    seat.Remarks,
		}
	}

	return apiSeats
}

func toApiCustomerBookings(bookings []domain.BookingSummary) []api.CustomerBooking {
	apiBookings := make([]api.CustomerBooking, len(bookings))

	for i, booking := range bookings {
		apiBookings[i] = api.CustomerBooking{
			BookingId:    booking.BookingID,
			MovieTitle:   booking.MovieTitle,
			PosterUrl:    booking.PosterUrl,
			Genre:        booking.Genre,
			ScreenNumber: booking.ScreenNumber,
			Date:         formatShowDate(booking.ShowDate),
			TimeSlot:     booking.TimeSlot,
			Seats:        toApiBookingSeats(booking.Seats),
			CreatedAt:    booking.CreatedAt,
		}
	}

	return apiBookings
}
