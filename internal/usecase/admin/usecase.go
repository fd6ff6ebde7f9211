package admin

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	domain "hse-backend/internal/domain/admin"
	propertyDomain "hse-backend/internal/domain/property"
	"hse-backend/pkg/id"
	"hse-backend/pkg/password"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer issues admin access tokens. Admin sessions are access-token
// only; there is no refresh flow for the back office.
type TokenIssuer interface {
	IssueAccessToken(subject string) (string, error)
}

type Usecase struct {
	admins     domain.Repository
	properties propertyDomain.Repository
	tokens     TokenIssuer
	log        *logrus.Logger
}

func NewUsecase(admins domain.Repository, properties propertyDomain.Repository, tokens TokenIssuer, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{admins: admins, properties: properties, tokens: tokens, log: log}
}

func (u *Usecase) SignUp(ctx context.Context, in SignUpInput) (*AdminDTO, error) {
	if _, err := u.admins.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	a := &domain.Admin{
		AdminID:  id.NewID32(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     domain.RoleAdmin,
	}
	if err := u.admins.Create(ctx, a); err != nil {
		return nil, err
	}
	return &AdminDTO{AdminID: a.AdminID, Name: a.Name, Email: a.Email}, nil
}

func (u *Usecase) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	a, err := u.admins.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Verify(in.Password, a.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	access, err := u.tokens.IssueAccessToken(a.AdminID)
	if err != nil {
		return nil, err
	}
	return &SignInResult{AdminID: a.AdminID, Name: a.Name, AccessToken: access}, nil
}

// CreateProperty lists a new property with a full, untouched inventory:
// token_left starts at total_token and total_asset_value_left at
// total_asset_value. Document URLs come from the handler, which owns the
// multipart uploads.
func (u *Usecase) CreateProperty(ctx context.Context, in CreatePropertyInput) (*propertyDomain.Property, error) {
	p := &propertyDomain.Property{
		PropertyID:       id.NewID32(),
		PropertyName:     in.PropertyName,
		PropertyLocation: in.PropertyLocation,
		LockPeriod:       in.LockPeriod,

		SharedType:           in.SharedType,
		AboutSharedType:      in.AboutSharedType,
		HoldingCompany:       in.HoldingCompany,
		AboutHoldingCompany:  in.AboutHoldingCompany,
		AboutProperty:        in.AboutProperty,
		AboutTotalAssetValue: in.AboutTotalAssetValue,
		Faqs:                 in.Faqs,

		PropertyImagePath:          in.Documents["property_image"],
		PropertyVideoPath:          in.Documents["property_video"],
		PropertyAmenitiesImagePath: in.Documents["property_amenities_image"],
		TitleDeedDocumentPath:      in.Documents["title_deed_document"],
		FloorLayoutDocumentPath:    in.Documents["floor_layout_document"],
		CompanyDetailsDocumentPath: in.Documents["company_details_document"],
		OwnershipDocumentPath:      in.Documents["ownership_document"],
		OtherDocumentPath:          in.Documents["other_document"],

		TotalAssetValue:     in.TotalAssetValue,
		TotalToken:          in.TotalToken,
		TotalAssetValueLeft: in.TotalAssetValue,
		TokenLeft:           in.TotalToken,
	}
	if err := u.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{
		"property_id": p.PropertyID,
		"total_token": p.TotalToken,
	}).Info("property listed")
	return p, nil
}
