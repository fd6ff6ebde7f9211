package investment

import "time"

type InvestInput struct {
	PropertyID string  `json:"property_id"`
	InvestorID string  `json:"-"`
	Amount     float64 `json:"amount"`
}

type InvestmentDTO struct {
	InvestmentID string    `json:"investment_id"`
	PropertyID   string    `json:"property_id"`
	Amount       float64   `json:"amount"`
	Tokens       float64   `json:"tokens"`
	Percent      float64   `json:"percent"`
	TokenPrice   float64   `json:"token_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// InvestorSummary is one distinct investor holding a stake in a property.
type InvestorSummary struct {
	InvestorID   string  `json:"investor_id"`
	FullName     string  `json:"full_name"`
	EmailID      string  `json:"email_id"`
	MobileNumber string  `json:"mobile_number"`
	TotalAmount  float64 `json:"total_amount"`
	TotalTokens  float64 `json:"total_tokens"`
}

// Holding is one entry in an investor's portfolio.
type Holding struct {
	InvestmentID string    `json:"investment_id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Amount       float64   `json:"amount"`
	Tokens       float64   `json:"tokens"`
	Percent      float64   `json:"percent"`
	TokenPrice   float64   `json:"token_price"`
	CreatedAt    time.Time `json:"created_at"`
}
