package property

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("property not found")

// Property is a tokenized listing. The ledger columns (TotalAssetValueLeft,
// TokenLeft and the three running counters) are mutated only inside the
// investment transaction; everything else is set once by an admin at listing
// time.
//
// TotalToken represents 100% ownership of the property.
type Property struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	PropertyID string `gorm:"size:32;uniqueIndex:ux_properties_property_id" json:"property_id"`

	PropertyName     string `gorm:"size:255" json:"property_name"`
	PropertyLocation string `gorm:"size:255" json:"property_location"`
	LockPeriod       string `gorm:"size:64" json:"lock_period"`

	SharedType           string `gorm:"size:64" json:"shared_type"`
	AboutSharedType      string `gorm:"type:text" json:"about_shared_type"`
	HoldingCompany       string `gorm:"size:255" json:"holding_company"`
	AboutHoldingCompany  string `gorm:"type:text" json:"about_holding_company"`
	AboutProperty        string `gorm:"type:text" json:"about_property"`
	AboutTotalAssetValue string `gorm:"type:text" json:"about_total_asset_value"`
	Faqs                 string `gorm:"type:text" json:"faqs"`

	PropertyImagePath           string `gorm:"type:text" json:"property_image_path"`
	PropertyVideoPath           string `gorm:"type:text" json:"property_video_path"`
	PropertyAmenitiesImagePath  string `gorm:"type:text" json:"property_amenities_image_path"`
	TitleDeedDocumentPath       string `gorm:"type:text" json:"title_deed_document_path"`
	FloorLayoutDocumentPath     string `gorm:"type:text" json:"floor_layout_document_path"`
	CompanyDetailsDocumentPath  string `gorm:"type:text" json:"company_details_document_path"`
	OwnershipDocumentPath       string `gorm:"type:text" json:"ownership_document_path"`
	OtherDocumentPath           string `gorm:"type:text" json:"other_document_path"`

	// Immutable listing figures.
	TotalAssetValue float64 `gorm:"type:decimal(18,2)" json:"total_asset_value"`
	TotalToken      float64 `gorm:"type:decimal(24,8)" json:"total_token"`

	// Shared mutable inventory. 0 <= TokenLeft <= TotalToken and
	// 0 <= TotalAssetValueLeft <= TotalAssetValue at all times.
	TotalAssetValueLeft float64 `gorm:"type:decimal(18,2)" json:"total_asset_value_left"`
	TokenLeft           float64 `gorm:"type:decimal(24,8)" json:"token_left"`

	// Running aggregates across all accepted investments. PercentSold and
	// PercentWeightedInvested accumulate ownership percentages, not currency.
	TokensSold              float64 `gorm:"type:decimal(24,8)" json:"tokens_sold"`
	PercentSold             float64 `gorm:"type:decimal(12,6)" json:"percent_sold"`
	PercentWeightedInvested float64 `gorm:"type:decimal(12,6)" json:"percent_weighted_invested"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string { return "properties" }
