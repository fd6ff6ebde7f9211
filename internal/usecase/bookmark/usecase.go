package bookmark

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "hse-backend/internal/domain/bookmark"
	investorDomain "hse-backend/internal/domain/investor"
	propertyDomain "hse-backend/internal/domain/property"
)

var ErrAlreadyBookmarked = errors.New("property already bookmarked")

type Usecase struct {
	bookmarks  domain.Repository
	properties propertyDomain.Repository
	investors  investorDomain.Repository
}

func NewUsecase(bookmarks domain.Repository, properties propertyDomain.Repository, investors investorDomain.Repository) *Usecase {
	return &Usecase{bookmarks: bookmarks, properties: properties, investors: investors}
}

func (u *Usecase) Add(ctx context.Context, investorID, propertyID string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return investorDomain.ErrNotFound
		}
		return err
	}
	p, err := u.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return propertyDomain.ErrNotFound
		}
		return err
	}

	err = u.bookmarks.Create(ctx, &domain.Bookmark{InvestorID: inv.ID, PropertyID: p.ID})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyBookmarked
	}
	return err
}

// ListMine returns the investor's bookmarks with their property listings.
func (u *Usecase) ListMine(ctx context.Context, investorID string) ([]domain.Bookmark, error) {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, investorDomain.ErrNotFound
		}
		return nil, err
	}
	return u.bookmarks.ListByInvestorID(ctx, inv.ID)
}
