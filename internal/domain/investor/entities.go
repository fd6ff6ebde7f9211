package investor

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleInvestor Role = "INVESTOR"
)

var (
	ErrNotFound      = errors.New("investor not found")
	ErrAlreadyExists = errors.New("investor already exists")
)

// Investor holds identity, KYC progress and the funds balance.
// FundsAvailable is mutated only by a committed investment transaction and
// must never go negative.
type Investor struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	InvestorID string `gorm:"size:32;uniqueIndex:ux_investors_investor_id" json:"investor_id"`

	FullName     string    `gorm:"size:255" json:"full_name"`
	EmailID      string    `gorm:"size:255;uniqueIndex:ux_investors_email" json:"email_id"`
	MobileNumber string    `gorm:"size:20;uniqueIndex:ux_investors_mobile" json:"mobile_number"`
	DateOfBirth  time.Time `gorm:"type:date" json:"date_of_birth"`
	// nil until SetPassword completes.
	Password *string `gorm:"type:text" json:"-"`
	Role     Role    `gorm:"size:16;default:'INVESTOR'" json:"role"`

	FundsAvailable float64 `gorm:"type:decimal(18,2);default:0" json:"funds_available"`

	// Profile
	InvestmentPreference string `gorm:"size:255" json:"investment_preference"`
	AddressOne           string `gorm:"size:255" json:"address_one"`
	AddressTwo           string `gorm:"size:255" json:"address_two"`
	AddressThree         string `gorm:"size:255" json:"address_three"`
	PinCode              string `gorm:"size:16" json:"pin_code"`
	State                string `gorm:"size:128" json:"state"`
	City                 string `gorm:"size:128" json:"city"`

	// KYC
	Industry            string `gorm:"size:128" json:"industry"`
	Organization        string `gorm:"size:255" json:"organization"`
	RoleAtWork          string `gorm:"size:128" json:"role_at_work"`
	WorkingDuration     string `gorm:"size:64" json:"working_duration"`
	IncomeRange         string `gorm:"size:64" json:"income_range"`
	SelfieImagePath     string `gorm:"type:text" json:"selfie_image_path"`
	AddressImagePath    string `gorm:"type:text" json:"address_image_path"`
	PhoneNumberVerified bool   `gorm:"default:false" json:"phone_number_verified"`

	ReceiveNotification bool   `gorm:"default:false" json:"receive_notification"`
	ExpoPushToken       string `gorm:"type:text" json:"-"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investor) TableName() string { return "investors" }
