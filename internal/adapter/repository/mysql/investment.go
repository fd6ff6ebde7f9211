package mysql

import (
	"context"

	"gorm.io/gorm"

	investmentDomain "hse-backend/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, pi *investmentDomain.PropertyInvestment) error {
	return r.db.WithContext(ctx).Create(pi).Error
}

func (r *InvestmentRepository) ListByPropertyID(ctx context.Context, propertyNumericID uint64) ([]investmentDomain.PropertyInvestment, error) {
	var out []investmentDomain.PropertyInvestment
	res := r.db.WithContext(ctx).
		Preload("Investor").
		Where("property_id = ?", propertyNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]investmentDomain.PropertyInvestment, error) {
	var out []investmentDomain.PropertyInvestment
	res := r.db.WithContext(ctx).
		Preload("Property").
		Where("investor_id = ?", investorNumericID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
