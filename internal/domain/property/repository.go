package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByPropertyID(ctx context.Context, propertyID string) (*Property, error)
	// GetByPropertyIDForUpdate takes a row lock; only valid inside a transaction.
	GetByPropertyIDForUpdate(ctx context.Context, propertyID string) (*Property, error)
	List(ctx context.Context) ([]Property, error)
	Save(ctx context.Context, p *Property) error
}
