package uow

import (
	"context"

	"hse-backend/internal/domain/investment"
	"hse-backend/internal/domain/investor"
	"hse-backend/internal/domain/property"
)

type Repos struct {
	Properties  property.Repository
	Investors   investor.Repository
	Investments investment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the property and investor rows first, then pass
	// their in-transaction snapshots in. Concurrent investments against
	// the same rows serialize on these locks.
	WithinInvestmentTx(ctx context.Context, propertyID, investorID string, fn func(r Repos, p *property.Property, inv *investor.Investor) error) error
}
