package investor

import (
	"context"
	"errors"

	"hse-backend/internal/infrastructure/cache"
	"hse-backend/internal/infrastructure/otp"
)

type sendFn func(ctx context.Context, contact string) (string, error)

// sendAndStoreOTP delivers a code to the contact and remembers the provider
// reference so a later verify call can confirm against it.
func (u *Usecase) sendAndStoreOTP(ctx context.Context, contact string, send sendFn) error {
	ref, err := send(ctx, contact)
	if err != nil {
		return err
	}
	return u.otpRefs.StoreReference(ctx, contact, ref)
}

func (u *Usecase) SendEmailOTP(ctx context.Context, investorID string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	return u.sendAndStoreOTP(ctx, inv.EmailID, u.otp.SendEmailOTP)
}

func (u *Usecase) SendPhoneOTP(ctx context.Context, investorID string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	return u.sendAndStoreOTP(ctx, inv.MobileNumber, u.otp.SendSMSOTP)
}

func (u *Usecase) confirmOTP(ctx context.Context, contact, code string) error {
	ref, err := u.otpRefs.Reference(ctx, contact)
	if err != nil {
		if errors.Is(err, cache.ErrOTPExpired) {
			return ErrOTPInvalid
		}
		return err
	}
	if err := u.otp.ConfirmOTP(ctx, ref, code); err != nil {
		if errors.Is(err, otp.ErrVerificationFailed) {
			return ErrOTPInvalid
		}
		return err
	}
	return nil
}

func (u *Usecase) VerifyEmailOTP(ctx context.Context, investorID, code string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	return u.confirmOTP(ctx, inv.EmailID, code)
}

// VerifyPhoneOTP marks the mobile number verified once the provider accepts
// the code. KYC review depends on this flag.
func (u *Usecase) VerifyPhoneOTP(ctx context.Context, investorID, code string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	if err := u.confirmOTP(ctx, inv.MobileNumber, code); err != nil {
		return err
	}
	inv.PhoneNumberVerified = true
	return u.investors.Save(ctx, inv)
}
