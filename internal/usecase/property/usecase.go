package property

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "hse-backend/internal/domain/property"
)

// Usecase serves the investor-facing browse views. Listings are read as-is;
// all mutation goes through the admin and investment usecases.
type Usecase struct {
	properties domain.Repository
}

func NewUsecase(properties domain.Repository) *Usecase {
	return &Usecase{properties: properties}
}

func (u *Usecase) List(ctx context.Context) ([]domain.Property, error) {
	return u.properties.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, propertyID string) (*domain.Property, error) {
	p, err := u.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
