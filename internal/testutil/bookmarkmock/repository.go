package bookmarkmock

import (
	"context"

	domain "hse-backend/internal/domain/bookmark"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies bookmark.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, b *domain.Bookmark) error
	ListByInvestorIDFn func(ctx context.Context, investorNumericID uint64) ([]domain.Bookmark, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Bookmark) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]domain.Bookmark, error) {
	if m.ListByInvestorIDFn != nil {
		return m.ListByInvestorIDFn(ctx, investorNumericID)
	}
	return nil, context.Canceled
}
