package mysql

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	bookmarkDomain "hse-backend/internal/domain/bookmark"
)

type BookmarkRepository struct{ db *gorm.DB }

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository { return &BookmarkRepository{db: db} }

func (r *BookmarkRepository) Create(ctx context.Context, b *bookmarkDomain.Bookmark) error {
	err := r.db.WithContext(ctx).Create(b).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return gorm.ErrDuplicatedKey
	}
	return err
}

func (r *BookmarkRepository) ListByInvestorID(ctx context.Context, investorNumericID uint64) ([]bookmarkDomain.Bookmark, error) {
	var out []bookmarkDomain.Bookmark
	res := r.db.WithContext(ctx).
		Preload("Property").
		Where("investor_id = ?", investorNumericID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
