package investormock

import (
	"context"

	domain "hse-backend/internal/domain/investor"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies investor.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, inv *domain.Investor) error
	GetByInvestorIDFn          func(ctx context.Context, investorID string) (*domain.Investor, error)
	GetByInvestorIDForUpdateFn func(ctx context.Context, investorID string) (*domain.Investor, error)
	GetByEmailFn               func(ctx context.Context, emailID string) (*domain.Investor, error)
	GetByMobileNumberFn        func(ctx context.Context, mobileNumber string) (*domain.Investor, error)
	SaveFn                     func(ctx context.Context, inv *domain.Investor) error
	DeleteFn                   func(ctx context.Context, inv *domain.Investor) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investor) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestorID(ctx context.Context, investorID string) (*domain.Investor, error) {
	if m.GetByInvestorIDFn != nil {
		return m.GetByInvestorIDFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByInvestorIDForUpdate(ctx context.Context, investorID string) (*domain.Investor, error) {
	if m.GetByInvestorIDForUpdateFn != nil {
		return m.GetByInvestorIDForUpdateFn(ctx, investorID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, emailID string) (*domain.Investor, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, emailID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Investor, error) {
	if m.GetByMobileNumberFn != nil {
		return m.GetByMobileNumberFn(ctx, mobileNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investor) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, inv *domain.Investor) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, inv)
	}
	return nil
}
