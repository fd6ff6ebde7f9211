package investor

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domain "hse-backend/internal/domain/investor"
	"hse-backend/pkg/id"
	"hse-backend/pkg/password"
)

type Usecase struct {
	investors domain.Repository
	tokens    TokenIssuer
	refresh   RefreshTokenRegistry
	otp       OTPSender
	otpRefs   OTPReferenceStore
	log       *logrus.Logger
}

func NewUsecase(investors domain.Repository, tokens TokenIssuer, refresh RefreshTokenRegistry, otp OTPSender, otpRefs OTPReferenceStore, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{investors: investors, tokens: tokens, refresh: refresh, otp: otp, otpRefs: otpRefs, log: log}
}

// SignUp registers an investor without a password; SetPassword finishes the
// flow. An email verification code is sent best-effort: a delivery failure
// does not roll the account back, the investor can request a resend.
func (u *Usecase) SignUp(ctx context.Context, in SignUpInput) (*Profile, error) {
	if _, err := u.investors.GetByEmail(ctx, in.EmailID); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := u.investors.GetByMobileNumber(ctx, in.MobileNumber); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return nil, err
	}

	inv := &domain.Investor{
		InvestorID:   id.NewID32(),
		FullName:     in.FullName,
		EmailID:      in.EmailID,
		MobileNumber: in.MobileNumber,
		DateOfBirth:  dob,
		Role:         domain.RoleInvestor,
	}
	if err := u.investors.Create(ctx, inv); err != nil {
		return nil, err
	}

	if err := u.sendAndStoreOTP(ctx, inv.EmailID, u.otp.SendEmailOTP); err != nil {
		u.log.WithError(err).WithField("investor_id", inv.InvestorID).
			Warn("signup email otp delivery failed")
	}
	return toProfile(inv), nil
}

// SetPassword hashes and stores the initial password. It refuses to
// overwrite an existing one; that path is ChangePassword.
func (u *Usecase) SetPassword(ctx context.Context, in SetPasswordInput) error {
	inv, err := u.investors.GetByEmail(ctx, in.EmailID)
	if err != nil {
		return mapNotFound(err)
	}
	if inv.Password != nil {
		return ErrPasswordAlreadySet
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return err
	}
	inv.Password = &hash
	return u.investors.Save(ctx, inv)
}

// SignIn accepts an email address or a mobile number as the contact. A
// missing account and a wrong password are indistinguishable to the caller.
func (u *Usecase) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	inv, err := u.findByContact(ctx, in.Contact)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if inv.Password == nil {
		return nil, ErrPasswordNotSet
	}
	if err := password.Verify(in.Password, *inv.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	access, err := u.tokens.IssueAccessToken(inv.InvestorID)
	if err != nil {
		return nil, err
	}
	refresh, ttl, err := u.tokens.IssueRefreshToken(inv.InvestorID)
	if err != nil {
		return nil, err
	}
	if err := u.refresh.Add(ctx, refresh, ttl); err != nil {
		return nil, err
	}

	return &SignInResult{
		InvestorID: inv.InvestorID,
		FullName:   inv.FullName,
		TokenPair:  TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

// Refresh exchanges a live refresh token for a new access token. The token
// must still be in the registry; signout removes it and expiry evicts it.
func (u *Usecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	ok, err := u.refresh.Contains(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidRefreshToken
	}
	subject, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	return u.tokens.IssueAccessToken(subject)
}

func (u *Usecase) SignOut(ctx context.Context, refreshToken string) error {
	return u.refresh.Remove(ctx, refreshToken)
}

func (u *Usecase) findByContact(ctx context.Context, contact string) (*domain.Investor, error) {
	inv, err := u.investors.GetByEmail(ctx, contact)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	inv, err = u.investors.GetByMobileNumber(ctx, contact)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return inv, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func toProfile(inv *domain.Investor) *Profile {
	return &Profile{
		InvestorID:           inv.InvestorID,
		FullName:             inv.FullName,
		EmailID:              inv.EmailID,
		MobileNumber:         inv.MobileNumber,
		DateOfBirth:          inv.DateOfBirth,
		FundsAvailable:       inv.FundsAvailable,
		InvestmentPreference: inv.InvestmentPreference,
		AddressOne:           inv.AddressOne,
		AddressTwo:           inv.AddressTwo,
		AddressThree:         inv.AddressThree,
		PinCode:              inv.PinCode,
		State:                inv.State,
		City:                 inv.City,
		Industry:             inv.Industry,
		Organization:         inv.Organization,
		RoleAtWork:           inv.RoleAtWork,
		WorkingDuration:      inv.WorkingDuration,
		IncomeRange:          inv.IncomeRange,
		SelfieImagePath:      inv.SelfieImagePath,
		AddressImagePath:     inv.AddressImagePath,
		PhoneNumberVerified:  inv.PhoneNumberVerified,
		ReceiveNotification:  inv.ReceiveNotification,
	}
}
