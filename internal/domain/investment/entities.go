package investment

import (
	"time"

	"hse-backend/internal/domain/investor"
	"hse-backend/internal/domain/property"
)

// PropertyInvestment is the join record written once per accepted investment.
// The same investor/property pair may appear many times; distinct-investor
// reporting dedupes by investor id. The snapshot columns record what the
// allocation engine computed at purchase time and are never read back into
// the engine arithmetic.
type PropertyInvestment struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID string `gorm:"size:32;uniqueIndex:ux_property_investments_investment_id" json:"investment_id"`

	PropertyID uint64 `gorm:"not null;index:idx_property_investments_property" json:"-"`
	InvestorID uint64 `gorm:"not null;index:idx_property_investments_investor" json:"-"`

	Amount     float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Tokens     float64 `gorm:"type:decimal(24,8)" json:"tokens"`
	Percent    float64 `gorm:"type:decimal(12,6)" json:"percent"`
	TokenPrice float64 `gorm:"type:decimal(18,6)" json:"token_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Belongs-to resolved by convention on the numeric FK columns above;
	// a foreignKey:InvestorID tag would bind to Investor's string
	// InvestorID field instead of its primary key.
	Property *property.Property `json:"property,omitempty"`
	Investor *investor.Investor `json:"investor,omitempty"`
}

func (PropertyInvestment) TableName() string { return "property_investments" }
