package investor

import (
	"context"
	"errors"
	"time"

	"hse-backend/pkg/password"
)

func (u *Usecase) ProfileDetails(ctx context.Context, investorID string) (*Profile, error) {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return toProfile(inv), nil
}

func (u *Usecase) UpdatePersonalProfile(ctx context.Context, investorID string, in PersonalProfileInput) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return err
	}
	inv.FullName = in.FullName
	inv.DateOfBirth = dob
	inv.InvestmentPreference = in.InvestmentPreference
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) UpdateAddressProfile(ctx context.Context, investorID string, in AddressProfileInput) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.AddressOne = in.AddressOne
	inv.AddressTwo = in.AddressTwo
	inv.AddressThree = in.AddressThree
	inv.PinCode = in.PinCode
	inv.State = in.State
	inv.City = in.City
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) UpdateEmployment(ctx context.Context, investorID string, in EmploymentInput) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.Industry = in.Industry
	inv.Organization = in.Organization
	inv.RoleAtWork = in.RoleAtWork
	inv.WorkingDuration = in.WorkingDuration
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) UpdateIncomeRange(ctx context.Context, investorID, incomeRange string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.IncomeRange = incomeRange
	return u.investors.Save(ctx, inv)
}

// SaveSelfie records the uploaded selfie's public URL. The handler owns the
// multipart handling and the media store write.
func (u *Usecase) SaveSelfie(ctx context.Context, investorID, url string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.SelfieImagePath = url
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) SaveAddressProof(ctx context.Context, investorID, url string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.AddressImagePath = url
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) ChangePassword(ctx context.Context, investorID string, in ChangePasswordInput) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	if inv.Password == nil {
		return ErrPasswordNotSet
	}
	if err := password.Verify(in.OldPassword, *inv.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	inv.Password = &hash
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) SetNotificationPreference(ctx context.Context, investorID string, enabled bool) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.ReceiveNotification = enabled
	return u.investors.Save(ctx, inv)
}

func (u *Usecase) SavePushToken(ctx context.Context, investorID, token string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	inv.ExpoPushToken = token
	return u.investors.Save(ctx, inv)
}

// Deactivate soft-deletes the account. The unique email and mobile stay
// reserved; reactivation is a support operation, not an API one.
func (u *Usecase) Deactivate(ctx context.Context, investorID string) error {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		return mapNotFound(err)
	}
	return u.investors.Delete(ctx, inv)
}
