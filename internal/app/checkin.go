package app

import (
	"errors"
	"net/http"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
)

// CheckSeatStatus looks up the current status of a physical seat for a
// screening. Used by front-desk staff to verify a ticket at the door.
func (app *Application) CheckSeatStatus(w http.ResponseWriter, r *http.Request) {
	var input api.SeatStatusRequest

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

	status, err := app.bookingRepo.GetSeatStatusForScreening(r.Context(), input.ScreenNumber, showDate, input.TimeSlot, input.SeatNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.SeatStatusResponse{Status: string(status)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
