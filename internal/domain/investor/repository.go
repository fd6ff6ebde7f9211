package investor

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investor) error
	GetByInvestorID(ctx context.Context, investorID string) (*Investor, error)
	// GetByInvestorIDForUpdate takes a row lock; only valid inside a transaction.
	GetByInvestorIDForUpdate(ctx context.Context, investorID string) (*Investor, error)
	GetByEmail(ctx context.Context, emailID string) (*Investor, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*Investor, error)
	Save(ctx context.Context, inv *Investor) error
	// Delete soft-deletes the record (account deactivation).
	Delete(ctx context.Context, inv *Investor) error
}
