package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	investorDomain "hse-backend/internal/domain/investor"
)

type InvestorRepository struct{ db *gorm.DB }

func NewInvestorRepository(db *gorm.DB) *InvestorRepository { return &InvestorRepository{db: db} }

func (r *InvestorRepository) Create(ctx context.Context, inv *investorDomain.Investor) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestorRepository) Save(ctx context.Context, inv *investorDomain.Investor) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestorRepository) GetByInvestorID(ctx context.Context, investorID string) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).Where("investor_id = ?", investorID).First(&out)
	return &out, res.Error
}

func (r *InvestorRepository) GetByInvestorIDForUpdate(ctx context.Context, investorID string) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("investor_id = ?", investorID).
		First(&out)
	return &out, res.Error
}

func (r *InvestorRepository) GetByEmail(ctx context.Context, emailID string) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).Where("email_id = ?", emailID).First(&out)
	return &out, res.Error
}

func (r *InvestorRepository) GetByMobileNumber(ctx context.Context, mobileNumber string) (*investorDomain.Investor, error) {
	var out investorDomain.Investor
	res := r.db.WithContext(ctx).Where("mobile_number = ?", mobileNumber).First(&out)
	return &out, res.Error
}

func (r *InvestorRepository) Delete(ctx context.Context, inv *investorDomain.Investor) error {
	return r.db.WithContext(ctx).Delete(inv).Error
}
