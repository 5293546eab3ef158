package repository

import (
	"context"

	"github.com/cinehall/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (booking_id, customer_id, amount, card_last_four, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, payment_date, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		payment.BookingID,
		payment.CustomerID,
		payment.Amount,
		payment.CardLastFour,
		payment.Status,
	).Scan(&payment.ID, &payment.PaymentDate, &payment.CreatedAt)
}

func (p *PostgresPaymentRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Payment, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, booking_id, customer_id, amount, card_last_four, status, payment_date, created_at
		FROM payments
		ORDER BY payment_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	totalRecords := 0

	for rows.Next() {
		var payment domain.Payment

		err := rows.Scan(
			&totalRecords,
			&payment.ID,
			&payment.BookingID,
			&payment.CustomerID,
			&payment.Amount,
			&payment.CardLastFour,
			&payment.Status,
			&payment.PaymentDate,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return payments, metadata, nil
}
