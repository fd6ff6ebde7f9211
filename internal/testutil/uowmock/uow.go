package uowmock

import (
	"context"
	"errors"

	"hse-backend/internal/domain/investor"
	"hse-backend/internal/domain/property"
	"hse-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn           func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinInvestmentTxFn func(ctx context.Context, propertyID, investorID string, fn func(r uow.Repos, p *property.Property, inv *investor.Investor) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinInvestmentTx(ctx context.Context, propertyID, investorID string, fn func(r uow.Repos, p *property.Property, inv *investor.Investor) error) error {
	if m.WithinInvestmentTxFn != nil {
		return m.WithinInvestmentTxFn(ctx, propertyID, investorID, fn)
	}
	return errUnimplemented
}
