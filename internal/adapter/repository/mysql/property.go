package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	propertyDomain "hse-backend/internal/domain/property"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out)
	return &out, res.Error
}

// GetByPropertyIDForUpdate locks the row for the duration of the enclosing
// transaction. Serializes concurrent investments on the same property.
func (r *PropertyRepository) GetByPropertyIDForUpdate(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("property_id = ?", propertyID).
		First(&out)
	return &out, res.Error
}

func (r *PropertyRepository) List(ctx context.Context) ([]propertyDomain.Property, error) {
	var out []propertyDomain.Property
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}
