package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	investorDomain "hse-backend/internal/domain/investor"
	"hse-backend/internal/infrastructure/media"
	"hse-backend/internal/usecase/investor"
)

type InvestorHandler struct {
	uc    *investor.Usecase
	files media.Store
}

func NewInvestorHandler(uc *investor.Usecase, files media.Store) *InvestorHandler {
	return &InvestorHandler{uc: uc, files: files}
}

func (h *InvestorHandler) SignUp(c echo.Context) error {
	var req investor.SignUpInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	p, err := h.uc.SignUp(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, investorDomain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email or mobile number already registered"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signup failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *InvestorHandler) SetPassword(c echo.Context) error {
	var req investor.SetPasswordInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	err := h.uc.SetPassword(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "password set"})
	case errors.Is(err, investorDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
	case errors.Is(err, investor.ErrPasswordAlreadySet):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "password already set"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not set password"})
	}
}

func (h *InvestorHandler) SignIn(c echo.Context) error {
	var req investor.SignInInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	res, err := h.uc.SignIn(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, res)
	case errors.Is(err, investor.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, investor.ErrPasswordNotSet):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "password not set, complete signup first"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signin failed"})
	}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *InvestorHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	access, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, investor.ErrInvalidRefreshToken) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "refresh token invalid or revoked"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "refresh failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"access_token": access})
}

func (h *InvestorHandler) SignOut(c echo.Context) error {
	var req refreshReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	if err := h.uc.SignOut(c.Request().Context(), req.RefreshToken); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signout failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "signed out"})
}

// ---- OTP ----

func (h *InvestorHandler) otpResult(c echo.Context, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, investorDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
	case errors.Is(err, investor.ErrOTPInvalid):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "otp code invalid or expired"})
	default:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "otp provider unavailable"})
	}
}

func (h *InvestorHandler) SendEmailOTP(c echo.Context) error {
	return h.otpResult(c, h.uc.SendEmailOTP(c.Request().Context(), investorID(c)))
}

func (h *InvestorHandler) SendPhoneOTP(c echo.Context) error {
	return h.otpResult(c, h.uc.SendPhoneOTP(c.Request().Context(), investorID(c)))
}

func (h *InvestorHandler) VerifyEmailOTP(c echo.Context) error {
	var req investor.VerifyOTPInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.otpResult(c, h.uc.VerifyEmailOTP(c.Request().Context(), investorID(c), req.Code))
}

func (h *InvestorHandler) VerifyPhoneOTP(c echo.Context) error {
	var req investor.VerifyOTPInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.otpResult(c, h.uc.VerifyPhoneOTP(c.Request().Context(), investorID(c), req.Code))
}

// ---- KYC ----

func (h *InvestorHandler) UpdateEmployment(c echo.Context) error {
	var req investor.EmploymentInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.UpdateEmployment(c.Request().Context(), investorID(c), req))
}

type incomeRangeReq struct {
	IncomeRange string `json:"income_range" validate:"required"`
}

func (h *InvestorHandler) UpdateIncomeRange(c echo.Context) error {
	var req incomeRangeReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.UpdateIncomeRange(c.Request().Context(), investorID(c), req.IncomeRange))
}

// storeUpload saves one multipart file field and returns its public URL.
func (h *InvestorHandler) storeUpload(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return h.files.Save(c.Request().Context(), fh.Filename, contentTypeOf(fh), src)
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

func (h *InvestorHandler) uploadKYCDocument(c echo.Context, field string, save func(ctx echo.Context, url string) error) error {
	url, err := h.storeUpload(c, field)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or unreadable " + field + " file"})
	}
	return h.profileResult(c, save(c, url))
}

func (h *InvestorHandler) UploadSelfie(c echo.Context) error {
	return h.uploadKYCDocument(c, "selfie", func(ctx echo.Context, url string) error {
		return h.uc.SaveSelfie(ctx.Request().Context(), investorID(ctx), url)
	})
}

func (h *InvestorHandler) UploadAddressProof(c echo.Context) error {
	return h.uploadKYCDocument(c, "address_proof", func(ctx echo.Context, url string) error {
		return h.uc.SaveAddressProof(ctx.Request().Context(), investorID(ctx), url)
	})
}

// ---- profile ----

func (h *InvestorHandler) profileResult(c echo.Context, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
	case errors.Is(err, investorDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
	case errors.Is(err, investor.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, investor.ErrPasswordNotSet):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "password not set"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "update failed"})
	}
}

func (h *InvestorHandler) ProfileDetails(c echo.Context) error {
	p, err := h.uc.ProfileDetails(c.Request().Context(), investorID(c))
	if err != nil {
		if errors.Is(err, investorDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load profile"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *InvestorHandler) UpdatePersonalProfile(c echo.Context) error {
	var req investor.PersonalProfileInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.UpdatePersonalProfile(c.Request().Context(), investorID(c), req))
}

func (h *InvestorHandler) UpdateAddressProfile(c echo.Context) error {
	var req investor.AddressProfileInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.UpdateAddressProfile(c.Request().Context(), investorID(c), req))
}

func (h *InvestorHandler) ChangePassword(c echo.Context) error {
	var req investor.ChangePasswordInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.ChangePassword(c.Request().Context(), investorID(c), req))
}

type notificationReq struct {
	Enabled bool `json:"enabled"`
}

func (h *InvestorHandler) SetNotificationPreference(c echo.Context) error {
	var req notificationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	return h.profileResult(c, h.uc.SetNotificationPreference(c.Request().Context(), investorID(c), req.Enabled))
}

type pushTokenReq struct {
	Token string `json:"token" validate:"required"`
}

func (h *InvestorHandler) SavePushToken(c echo.Context) error {
	var req pushTokenReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	return h.profileResult(c, h.uc.SavePushToken(c.Request().Context(), investorID(c), req.Token))
}

func (h *InvestorHandler) Deactivate(c echo.Context) error {
	return h.profileResult(c, h.uc.Deactivate(c.Request().Context(), investorID(c)))
}
