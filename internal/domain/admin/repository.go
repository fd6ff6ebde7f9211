package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByAdminID(ctx context.Context, adminID string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}
