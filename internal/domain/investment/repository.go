package investment

import "context"

type Repository interface {
	Create(ctx context.Context, pi *PropertyInvestment) error
	// ListByPropertyID preloads the Investor relation.
	ListByPropertyID(ctx context.Context, propertyNumericID uint64) ([]PropertyInvestment, error)
	// ListByInvestorID preloads the Property relation.
	ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]PropertyInvestment, error)
}
