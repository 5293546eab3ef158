package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
)

// RequestSeatCancellation moves a booked seat into pending_cancel. The seat
// keeps occupying its seat number until an administrator approves the
// request, so availability never shows it as free in the meantime.
func (app *Application) RequestSeatCancellation(w http.ResponseWriter, r *http.Request) {
	bookingID, seatID, ok := app.readSeatParams(w, r)
	if !ok {
		return
	}

	var input api.CancelSeatRequest

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

	err = app.bookingRepo.UpdateSeatStatus(
		r.Context(),
		bookingID,
		seatID,
		domain.SeatStatusBooked,
		domain.SeatStatusPendingCancel,
		&input.Remarks,
	)
	if err != nil {
		app.seatTransitionErrorResponse(w, r, err)
		return
	}

	app.notifyCancellationRequested(r, bookingID, seatID, input.Remarks)

	err = app.writeJSON(w, http.StatusOK, api.SeatStatusResponse{Status: string(domain.SeatStatusPendingCancel)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ApproveSeatCancellation releases a pending-cancel seat, freeing its seat
// number for new reservations.
func (app *Application) ApproveSeatCancellation(w http.ResponseWriter, r *http.Request) {
	app.resolveCancellation(w, r, domain.SeatStatusReleased)
}

// RejectSeatCancellation returns a pending-cancel seat to booked. The
// customer may submit a new cancellation request afterwards.
func (app *Application) RejectSeatCancellation(w http.ResponseWriter, r *http.Request) {
	app.resolveCancellation(w, r, domain.SeatStatusBooked)
}

func (app *Application) resolveCancellation(w http.ResponseWriter, r *http.Request, target domain.SeatStatus) {
	bookingID, seatID, ok := app.readSeatParams(w, r)
	if !ok {
		return
	}

	err := app.bookingRepo.UpdateSeatStatus(
		r.Context(),
		bookingID,
		seatID,
		domain.SeatStatusPendingCancel,
		target,
		nil,
	)
	if err != nil {
		app.seatTransitionErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.SeatStatusResponse{Status: string(target)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCancellationRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := app.bookingRepo.GetPendingCancellations(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	items := make([]api.CancellationRequestItem, len(requests))
	for i, req := range requests {
		items[i] = api.CancellationRequestItem{
			BookingId:   req.BookingID,
			SeatId:      req.SeatID,
			CustomerId:  req.CustomerID,
			MovieTitle:  req.MovieTitle,
			Date:        formatShowDate(req.ShowDate),
			TimeSlot:    req.TimeSlot,
			SeatNumber:  req.SeatNumber,
			Remarks:     req.Remarks,
			RequestedAt: req.RequestedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, api.CancellationRequestsResponse{Requests: items}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readSeatParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	bookingID, err := app.readIntParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return 0, 0, false
	}

	seatID, err := app.readIntParam(r, "seatID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return 0, 0, false
	}

	return bookingID, seatID, true
}

func (app *Application) seatTransitionErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrInvalidSeatTransition):
		app.editConflictResponseWithErr(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) notifyCancellationRequested(r *http.Request, bookingID, seatID int, remarks string) {
	logger := app.contextGetLogger(r)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(fmt.Sprintf("%v", rec))
			}
		}()

		data := map[string]any{
			"bookingID": bookingID,
			"seatID":    seatID,
			"remarks":   remarks,
		}

		err := app.mailer.Send(app.config.SMTP.AdminEmail, "cancellation_requested.tmpl", data)
		if err != nil {
			logger.Error("failed to send cancellation notification", "error", err)
		}
	}()
}
