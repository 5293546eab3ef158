package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
)

// GetAvailability answers which seats are occupied for a screening key.
// Booked and pending-cancel seats both count as occupied; a pending
// cancellation holds its seat until an administrator approves it.
func (app *Application) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	movieID, err := strconv.Atoi(query.Get("movieId"))
	if err != nil || movieID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("invalid movieId parameter"))
		return
	}

	showDate, err := parseShowDate(query.Get("date"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format"))
		return
	}

	timeSlot := query.Get("timeSlot")
	if timeSlot == "" {
		app.badRequestResponse(w, r, fmt.Errorf("timeSlot parameter is required"))
		return
	}

	schedule, err := app.scheduleRepo.GetByScreeningKey(r.Context(), movieID, showDate, timeSlot)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrScheduleNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	occupiedSeats, err := app.bookingRepo.GetOccupiedSeatNumbers(r.Context(), schedule.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.AvailabilityResponse{
		MovieId:       movieID,
		Date:          formatShowDate(showDate),
		TimeSlot:      timeSlot,
		OccupiedSeats: occupiedSeats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
