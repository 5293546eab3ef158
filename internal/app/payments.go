package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cinehall/cinema-booking-system/api"
	"github.com/cinehall/cinema-booking-system/internal/domain"
)

// CreatePayment records a checkout against an existing booking. No charge is
// made against the card; only its last four digits are kept for the receipt.
func (app *Application) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePaymentRequest

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

	booking, err := app.bookingRepo.GetBookingById(r.Context(), input.BookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.CustomerID != input.CustomerId {
		app.badRequestResponse(w, r, fmt.Errorf("booking does not belong to this customer"))
		return
	}

	payment := &domain.Payment{
		BookingID:    input.BookingId,
		CustomerID:   input.CustomerId,
		Amount:       input.Amount,
		CardLastFour: input.Card.Number[len(input.Card.Number)-4:],
		Status:       domain.PaymentStatusCompleted,
	}

	err = app.paymentRepo.Create(r.Context(), payment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiPayment(*payment), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPayments(w http.ResponseWriter, r *http.Request) {
	pagination := app.readPagination(r)

	payments, metadata, err := app.paymentRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiPayments := make([]api.Payment, len(payments))
	for i, payment := range payments {
		apiPayments[i] = toApiPayment(payment)
	}

	resp := api.PaymentListResponse{
		Payments: apiPayments,
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetEarnings reports sold seats and revenue per time slot for one movie on
// one date.
func (app *Application) GetEarnings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	movieID, err := strconv.Atoi(query.Get("movieId"))
	if err != nil || movieID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("movieId must be a positive integer"))
		return
	}

	showDate, err := parseShowDate(query.Get("date"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format"))
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	slots, err := app.bookingRepo.GetEarningsByMovieAndDate(r.Context(), movieID, showDate)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiSlots := make([]api.SlotEarnings, len(slots))
	for i, slot := range slots {
		apiSlots[i] = api.SlotEarnings{
			TimeSlot:  slot.TimeSlot,
			SeatsSold: slot.SeatsSold,
			Amount:    slot.Amount,
		}
	}

	resp := api.EarningsResponse{
		MovieId: movieID,
		Date:    formatShowDate(showDate),
		Slots:   apiSlots,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPayment(payment domain.Payment) api.Payment {
	return api.Payment{
		Id:           payment.ID,
		BookingId:    payment.BookingID,
		CustomerId:   payment.CustomerID,
		Amount:       payment.Amount,
		CardLastFour: payment.CardLastFour,
		Status:       string(payment.Status),
		PaymentDate:  payment.PaymentDate,
	}
}
