package bookmark

import (
	"time"

	"hse-backend/internal/domain/property"
)

type Bookmark struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestorID uint64 `gorm:"not null;uniqueIndex:ux_bookmarks_pair" json:"-"`
	PropertyID uint64 `gorm:"not null;uniqueIndex:ux_bookmarks_pair" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Belongs-to resolved by convention on the numeric PropertyID column;
	// a foreignKey tag would bind to Property's string PropertyID field.
	Property *property.Property `json:"property,omitempty"`
}

func (Bookmark) TableName() string { return "bookmarks" }
