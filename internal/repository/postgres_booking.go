package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) Reserve(
	ctx context.Context,
	schedule *domain.Schedule,
	customerID int,
	seatNumbers []int) (*domain.Booking, error) {

	for _, seatNumber := range seatNumbers {
		if seatNumber < 1 || seatNumber > schedule.Capacity {
			return nil, domain.ErrInvalidSeat
		}
	}

	booking := domain.Booking{
		CustomerID: customerID,
		ScheduleID: schedule.ID,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Locking the schedule row serializes check-then-commit per screening,
		// so two overlapping reservations cannot both pass the occupancy check.
		var scheduleID int
		err := tx.QueryRow(ctx, `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`, schedule.ID).Scan(&scheduleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrScheduleNotFound
			}
			return err
		}

		occupied, err := occupiedSeatNumbers(ctx, tx, schedule.ID)
		if err != nil {
			return err
		}

		occupiedSet := make(map[int]bool, len(occupied))
		for _, seatNumber := range occupied {
			occupiedSet[seatNumber] = true
		}

		for _, seatNumber := range seatNumbers {
			if occupiedSet[seatNumber] {
				return domain.ErrSeatUnavailable
			}
		}

		query := `
			INSERT INTO bookings (customer_id, schedule_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, customerID, schedule.ID).Scan(&booking.ID, &booking.CreatedAt)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO booking_seats (booking_id, schedule_id, seat_number, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at
		`

		booking.Seats = make([]domain.SeatRecord, 0, len(seatNumbers))

		for _, seatNumber := range seatNumbers {
			seat := domain.SeatRecord{
				BookingID:  booking.ID,
				ScheduleID: schedule.ID,
				SeatNumber: seatNumber,
				Status:     domain.SeatStatusBooked,
			}

			err = tx.QueryRow(ctx, query, booking.ID, schedule.ID, seatNumber, seat.Status).
				Scan(&seat.ID, &seat.CreatedAt, &seat.UpdatedAt)
			if err != nil {
				return err
			}

			booking.Seats = append(booking.Seats, seat)
		}

		return nil
	})

	if err != nil {
		// The partial unique index on active seats is the backstop for
		// anything the advisory row lock did not cover.
		if isUniqueViolation(err) {
			return nil, domain.ErrSeatUnavailable
		}
		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetOccupiedSeatNumbers(ctx context.Context, scheduleID int) ([]int, error) {
	return occupiedSeatNumbers(ctx, p.db, scheduleID)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func occupiedSeatNumbers(ctx context.Context, q querier, scheduleID int) ([]int, error) {
	query := `
		SELECT seat_number
		FROM booking_seats
		WHERE schedule_id = $1 AND status IN ('booked', 'pending_cancel')
		ORDER BY seat_number
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seatNumbers := make([]int, 0)

	for rows.Next() {
		var seatNumber int

		if err := rows.Scan(&seatNumber); err != nil {
			return nil, err
		}

		seatNumbers = append(seatNumbers, seatNumber)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seatNumbers, nil
}

func (p *PostgresBookingRepository) GetBookingById(ctx context.Context, bookingID int) (*domain.Booking, error) {
	query := `
		SELECT id, customer_id, schedule_id, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, bookingID).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ScheduleID,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	seats, err := p.retrieveSeats(ctx, []int{booking.ID})
	if err != nil {
		return nil, err
	}

	booking.Seats = seats[booking.ID]

	return &booking, nil
}

func (p *PostgresBookingRepository) GetBookingsByCustomerId(
	ctx context.Context,
	customerID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			m.id,
			m.title,
			m.poster_url,
			m.genre,
			s.screen_number,
			sc.show_date,
			sc.time_slot,
			b.created_at
		FROM bookings b
		JOIN schedules sc ON b.schedule_id = sc.id
		JOIN movies m ON sc.movie_id = m.id
		JOIN screens s ON sc.screen_id = s.id
		WHERE b.customer_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, customerID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.MovieID,
			&booking.MovieTitle,
			&booking.PosterUrl,
			&booking.Genre,
			&booking.ScreenNumber,
			&booking.ShowDate,
			&booking.TimeSlot,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	bookingIDs := make([]int, len(bookings))
	for i, booking := range bookings {
		bookingIDs[i] = booking.BookingID
	}

	seats, err := p.retrieveSeats(ctx, bookingIDs)
	if err != nil {
		return nil, nil, err
	}

	for i := range bookings {
		bookings[i].Seats = seats[bookings[i].BookingID]
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) retrieveSeats(ctx context.Context, bookingIDs []int) (map[int][]domain.SeatRecord, error) {
	seats := make(map[int][]domain.SeatRecord, len(bookingIDs))

	if len(bookingIDs) == 0 {
		return seats, nil
	}

	query := `
		SELECT id, booking_id, schedule_id, seat_number, status, remarks, created_at, updated_at
		FROM booking_seats
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, seat_number
	`

	rows, err := p.db.Query(ctx, query, bookingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seat domain.SeatRecord

		err := rows.Scan(
			&seat.ID,
			&seat.BookingID,
			&seat.ScheduleID,
			&seat.SeatNumber,
			&seat.Status,
			&seat.Remarks,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		seats[seat.BookingID] = append(seats[seat.BookingID], seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresBookingRepository) UpdateSeatStatus(
	ctx context.Context,
	bookingID,
	seatID int,
	from,
	to domain.SeatStatus,
	remarks *string) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// Remarks are only overwritten when the transition provides them, so
		// approval keeps the customer's reason on the record.
		query := `
			UPDATE booking_seats
			SET status = $1, remarks = COALESCE($2, remarks), updated_at = NOW()
			WHERE id = $3 AND booking_id = $4 AND status = $5
		`

		tag, err := tx.Exec(ctx, query, to, remarks, seatID, bookingID, from)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			var current domain.SeatStatus

			err := tx.QueryRow(
				ctx,
				`SELECT status FROM booking_seats WHERE id = $1 AND booking_id = $2`,
				seatID,
				bookingID,
			).Scan(&current)

			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}
			if err != nil {
				return err
			}

			return domain.ErrInvalidSeatTransition
		}

		return nil
	})
}

func (p *PostgresBookingRepository) GetPendingCancellations(ctx context.Context) ([]domain.CancellationRequest, error) {
	query := `
		SELECT
			bs.booking_id,
			bs.id,
			b.customer_id,
			m.title,
			sc.show_date,
			sc.time_slot,
			bs.seat_number,
			bs.remarks,
			bs.updated_at
		FROM booking_seats bs
		JOIN bookings b ON bs.booking_id = b.id
		JOIN schedules sc ON bs.schedule_id = sc.id
		JOIN movies m ON sc.movie_id = m.id
		WHERE bs.status = 'pending_cancel'
		ORDER BY bs.updated_at
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.CancellationRequest, 0)

	for rows.Next() {
		var request domain.CancellationRequest

		err := rows.Scan(
			&request.BookingID,
			&request.SeatID,
			&request.CustomerID,
			&request.MovieTitle,
			&request.ShowDate,
			&request.TimeSlot,
			&request.SeatNumber,
			&request.Remarks,
			&request.RequestedAt,
		)
		if err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (p *PostgresBookingRepository) GetSeatStatusForScreening(
	ctx context.Context,
	screenNumber int,
	showDate time.Time,
	timeSlot string,
	seatNumber int) (domain.SeatStatus, error) {

	query := `
		SELECT bs.status
		FROM booking_seats bs
		JOIN schedules sc ON bs.schedule_id = sc.id
		JOIN screens s ON sc.screen_id = s.id
		WHERE s.screen_number = $1
			AND sc.show_date = $2
			AND sc.time_slot = $3
			AND bs.seat_number = $4
			AND bs.status IN ('booked', 'pending_cancel')
	`

	var status domain.SeatStatus

	err := p.db.QueryRow(ctx, query, screenNumber, showDate, timeSlot, seatNumber).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrRecordNotFound
		}
		return "", err
	}

	return status, nil
}

func (p *PostgresBookingRepository) GetEarningsByMovieAndDate(
	ctx context.Context,
	movieID int,
	showDate time.Time) ([]domain.SlotEarnings, error) {

	query := `
		SELECT sc.time_slot, m.ticket_price, COUNT(bs.id)
		FROM schedules sc
		JOIN movies m ON sc.movie_id = m.id
		LEFT JOIN booking_seats bs
			ON bs.schedule_id = sc.id AND bs.status IN ('booked', 'pending_cancel')
		WHERE sc.movie_id = $1 AND sc.show_date = $2
		GROUP BY sc.time_slot, m.ticket_price
		ORDER BY sc.time_slot
	`

	rows, err := p.db.Query(ctx, query, movieID, showDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earnings := make([]domain.SlotEarnings, 0)

	for rows.Next() {
		var (
			slot        domain.SlotEarnings
			ticketPrice decimal.Decimal
		)

		err := rows.Scan(&slot.TimeSlot, &ticketPrice, &slot.SeatsSold)
		if err != nil {
			return nil, err
		}

		slot.Amount = ticketPrice.Mul(decimal.NewFromInt(int64(slot.SeatsSold)))

		earnings = append(earnings, slot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return earnings, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
