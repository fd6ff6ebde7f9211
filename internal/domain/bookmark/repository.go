package bookmark

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	// ListByInvestorID preloads the Property relation.
	ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]Bookmark, error)
}
