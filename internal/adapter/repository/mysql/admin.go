package mysql

import (
	"context"

	"gorm.io/gorm"

	adminDomain "hse-backend/internal/domain/admin"
)

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *adminDomain.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) GetByAdminID(ctx context.Context, adminID string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	res := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&out)
	return &out, res.Error
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}
