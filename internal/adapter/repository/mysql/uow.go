package mysql

import (
	"context"

	"gorm.io/gorm"

	"hse-backend/internal/domain/investor"
	"hse-backend/internal/domain/property"
	"hse-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Properties:  &PropertyRepository{db: tx},
		Investors:   &InvestorRepository{db: tx},
		Investments: &InvestmentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

// WithinInvestmentTx locks the property row, then the investor row, before
// running fn. Lock order is fixed (property first) so two investments on the
// same pair cannot deadlock each other.
func (u *GormUoW) WithinInvestmentTx(ctx context.Context, propertyID, investorID string, fn func(r uow.Repos, p *property.Property, inv *investor.Investor) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		p, err := r.Properties.GetByPropertyIDForUpdate(ctx, propertyID)
		if err != nil {
			return err
		}
		inv, err := r.Investors.GetByInvestorIDForUpdate(ctx, investorID)
		if err != nil {
			return err
		}
		return fn(r, p, inv)
	})
}
