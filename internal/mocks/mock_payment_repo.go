package mocks

import (
	"context"

	"github.com/cinehall/cinema-booking-system/internal/domain"
)

type MockPaymentRepo struct {
	domain.PaymentRepository
	CreateFunc func(ctx context.Context, payment *domain.Payment) error
	GetAllFunc func(ctx context.Context, pagination domain.Pagination) ([]domain.Payment, *domain.Metadata, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return m.CreateFunc(ctx, payment)
}

func (m *MockPaymentRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Payment, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}
