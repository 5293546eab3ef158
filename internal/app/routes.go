package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.contextLogger)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureGuestSession)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieID}/schedules", app.GetMovieSchedules)

	r.Get("/availability", app.GetAvailability)

	r.Route("/screenings/{scheduleID}/holds", func(r chi.Router) {
		r.Post("/", app.CreateSeatHold)
		r.Delete("/", app.DeleteSeatHold)
	})

	r.Post("/reservations", app.CreateReservation)
	r.Get("/customers/{customerID}/bookings", app.GetCustomerBookings)

	r.Route("/bookings/{bookingID}/seats/{seatID}", func(r chi.Router) {
		r.Put("/cancel", app.RequestSeatCancellation)
		r.Put("/approve-cancel", app.ApproveSeatCancellation)
		r.Put("/reject-cancel", app.RejectSeatCancellation)
	})

	r.Post("/payments", app.CreatePayment)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/cancellation-requests", app.GetCancellationRequests)
		r.Post("/check-seat-status", app.CheckSeatStatus)
		r.Get("/payments", app.GetPayments)
		r.Get("/earnings", app.GetEarnings)
	})

	return r
}
