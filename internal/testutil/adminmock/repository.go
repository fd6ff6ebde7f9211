package adminmock

import (
	"context"

	domain "hse-backend/internal/domain/admin"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies admin.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, a *domain.Admin) error
	GetByAdminIDFn func(ctx context.Context, adminID string) (*domain.Admin, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Admin, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	if m.GetByAdminIDFn != nil {
		return m.GetByAdminIDFn(ctx, adminID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
