package investor

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordNotSet      = errors.New("password has not been set for this account")
	ErrPasswordAlreadySet  = errors.New("password already set")
	ErrInvalidRefreshToken = errors.New("refresh token invalid or revoked")
	ErrOTPInvalid          = errors.New("otp code invalid or expired")
)

// TokenIssuer is the slice of the JWT helper this usecase needs.
type TokenIssuer interface {
	IssueAccessToken(subject string) (string, error)
	IssueRefreshToken(subject string) (string, time.Duration, error)
	VerifyRefreshToken(token string) (string, error)
}

// RefreshTokenRegistry is the revocable set of live refresh tokens.
type RefreshTokenRegistry interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
	Remove(ctx context.Context, token string) error
}

// OTPSender delivers a verification code and confirms it against the
// provider reference.
type OTPSender interface {
	SendEmailOTP(ctx context.Context, email string) (string, error)
	SendSMSOTP(ctx context.Context, mobileNumber string) (string, error)
	ConfirmOTP(ctx context.Context, reference, code string) error
}

// OTPReferenceStore keeps the pending verification reference per contact.
type OTPReferenceStore interface {
	StoreReference(ctx context.Context, contact, reference string) error
	Reference(ctx context.Context, contact string) (string, error)
}

type SignUpInput struct {
	FullName     string `json:"full_name" validate:"required"`
	EmailID      string `json:"email_id" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required,e164"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

type SetPasswordInput struct {
	EmailID  string `json:"email_id" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignInInput struct {
	// Contact is an email address or a mobile number.
	Contact  string `json:"contact" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type SignInResult struct {
	InvestorID string `json:"investor_id"`
	FullName   string `json:"full_name"`
	TokenPair
}

type VerifyOTPInput struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type EmploymentInput struct {
	Industry        string `json:"industry" validate:"required"`
	Organization    string `json:"organization" validate:"required"`
	RoleAtWork      string `json:"role_at_work" validate:"required"`
	WorkingDuration string `json:"working_duration" validate:"required"`
}

type PersonalProfileInput struct {
	FullName             string `json:"full_name" validate:"required"`
	DateOfBirth          string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	InvestmentPreference string `json:"investment_preference"`
}

type AddressProfileInput struct {
	AddressOne   string `json:"address_one" validate:"required"`
	AddressTwo   string `json:"address_two"`
	AddressThree string `json:"address_three"`
	PinCode      string `json:"pin_code" validate:"required"`
	State        string `json:"state" validate:"required"`
	City         string `json:"city" validate:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type Profile struct {
	InvestorID           string    `json:"investor_id"`
	FullName             string    `json:"full_name"`
	EmailID              string    `json:"email_id"`
	MobileNumber         string    `json:"mobile_number"`
	DateOfBirth          time.Time `json:"date_of_birth"`
	FundsAvailable       float64   `json:"funds_available"`
	InvestmentPreference string    `json:"investment_preference"`
	AddressOne           string    `json:"address_one"`
	AddressTwo           string    `json:"address_two"`
	AddressThree         string    `json:"address_three"`
	PinCode              string    `json:"pin_code"`
	State                string    `json:"state"`
	City                 string    `json:"city"`
	Industry             string    `json:"industry"`
	Organization         string    `json:"organization"`
	RoleAtWork           string    `json:"role_at_work"`
	WorkingDuration      string    `json:"working_duration"`
	IncomeRange          string    `json:"income_range"`
	SelfieImagePath      string    `json:"selfie_image_path"`
	AddressImagePath     string    `json:"address_image_path"`
	PhoneNumberVerified  bool      `json:"phone_number_verified"`
	ReceiveNotification  bool      `json:"receive_notification"`
}
