package investmentmock

import (
	"context"

	domain "hse-backend/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investment.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, pi *domain.PropertyInvestment) error
	ListByPropertyIDFn func(ctx context.Context, propertyNumericID uint64) ([]domain.PropertyInvestment, error)
	ListByInvestorIDFn func(ctx context.Context, investorNumericID uint64) ([]domain.PropertyInvestment, error)
}

func (m *Repo) Create(ctx context.Context, pi *domain.PropertyInvestment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pi)
	}
	return nil
}

func (m *Repo) ListByPropertyID(ctx context.Context, propertyNumericID uint64) ([]domain.PropertyInvestment, error) {
	if m.ListByPropertyIDFn != nil {
		return m.ListByPropertyIDFn(ctx, propertyNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]domain.PropertyInvestment, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorNumericID)
	}
	return nil, context.Canceled
}
