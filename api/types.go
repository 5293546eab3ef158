// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type Movie struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Genre       string          `json:"genre"`
	PosterUrl   string          `json:"posterUrl"`
	TicketPrice decimal.Decimal `json:"ticketPrice"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type ScheduleEntry struct {
	Id           int    `json:"id"`
	ScreenNumber int    `json:"screenNumber"`
	Capacity     int    `json:"capacity"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
}

type MovieSchedulesResponse struct {
	MovieId   int             `json:"movieId"`
	Schedules []ScheduleEntry `json:"schedules"`
}

type AvailabilityResponse struct {
	MovieId       int    `json:"movieId"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	OccupiedSeats []int  `json:"occupiedSeats"`
}

type CreateReservationRequest struct {
	MovieId     int    `json:"movieId" validate:"required,min=1"`
	CustomerId  int    `json:"customerId" validate:"required,min=1"`
	Date        string `json:"date" validate:"required,showdate"`
	TimeSlot    string `json:"timeSlot" validate:"required,timeslot"`
	SeatNumbers []int  `json:"seatNumbers" validate:"required,min=1,unique,dive,min=1"`
}

type BookingSeat struct {
	SeatId     int     `json:"seatId"`
	SeatNumber int     `json:"seatNumber"`
	Status     string  `json:"status"`
	Remarks    *string `json:"remarks,omitempty"`
}

type BookingResponse struct {
	BookingId  int           `json:"bookingId"`
	CustomerId int           `json:"customerId"`
	MovieId    int           `json:"movieId"`
	Date       string        `json:"date"`
	TimeSlot   string        `json:"timeSlot"`
	Seats      []BookingSeat `json:"seats"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type CustomerBooking struct {
	BookingId    int           `json:"bookingId"`
	MovieTitle   string        `json:"movieTitle"`
	PosterUrl    string        `json:"posterUrl"`
	Genre        string        `json:"genre"`
	ScreenNumber int           `json:"screenNumber"`
	Date         string        `json:"date"`
	TimeSlot     string        `json:"timeSlot"`
	Seats        []BookingSeat `json:"seats"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type CustomerBookingsResponse struct {
	Bookings []CustomerBooking `json:"bookings"`
	Metadata Metadata          `json:"metadata"`
}

type CancelSeatRequest struct {
	Remarks string `json:"remarks" validate:"required,notblank"`
}

type CancellationRequestItem struct {
	BookingId   int       `json:"bookingId"`
	SeatId      int       `json:"seatId"`
	CustomerId  int       `json:"customerId"`
	MovieTitle  string    `json:"movieTitle"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	SeatNumber  int       `json:"seatNumber"`
	Remarks     string    `json:"remarks"`
	RequestedAt time.Time `json:"requestedAt"`
}

type CancellationRequestsResponse struct {
	Requests []CancellationRequestItem `json:"requests"`
}

type SeatStatusRequest struct {
	ScreenNumber int    `json:"screenNumber" validate:"required,min=1"`
	Date         string `json:"date" validate:"required,showdate"`
	TimeSlot     string `json:"timeSlot" validate:"required,timeslot"`
	SeatNumber   int    `json:"seatNumber" validate:"required,min=1"`
}

type SeatStatusResponse struct {
	Status string `json:"status"`
}

type CreateHoldRequest struct {
	SeatNumbers []int `json:"seatNumbers" validate:"required,min=1,unique,dive,min=1"`
}

type HoldResponse struct {
	HoldId      string `json:"holdId"`
	ScheduleId  int    `json:"scheduleId"`
	SeatNumbers []int  `json:"seatNumbers"`
	HoldTime    int    `json:"holdTime"`
}

type CardDetails struct {
	Number string `json:"number" validate:"required,len=16,numeric"`
	Expiry string `json:"expiry" validate:"required,cardexpiry"`
	Cvv    string `json:"cvv" validate:"required,len=3,numeric"`
}

type CreatePaymentRequest struct {
	BookingId  int             `json:"bookingId" validate:"required,min=1"`
	CustomerId int             `json:"customerId" validate:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Card       CardDetails     `json:"card" validate:"required"`
}

type Payment struct {
	Id           int             `json:"id"`
	BookingId    int             `json:"bookingId"`
	CustomerId   int             `json:"customerId"`
	Amount       decimal.Decimal `json:"amount"`
	CardLastFour string          `json:"cardLastFour"`
	Status       string          `json:"status"`
	PaymentDate  time.Time       `json:"paymentDate"`
}

type PaymentListResponse struct {
	Payments []Payment `json:"payments"`
	Metadata Metadata  `json:"metadata"`
}

type SlotEarnings struct {
	TimeSlot  string          `json:"timeSlot"`
	SeatsSold int             `json:"seatsSold"`
	Amount    decimal.Decimal `json:"amount"`
}

type EarningsResponse struct {
	MovieId int            `json:"movieId"`
	Date    string         `json:"date"`
	Slots   []SlotEarnings `json:"slots"`
}
