package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	adminDomain "hse-backend/internal/domain/admin"
	"hse-backend/internal/infrastructure/media"
	"hse-backend/internal/usecase/admin"
)

type AdminHandler struct {
	uc    *admin.Usecase
	files media.Store
}

func NewAdminHandler(uc *admin.Usecase, files media.Store) *AdminHandler {
	return &AdminHandler{uc: uc, files: files}
}

func (h *AdminHandler) SignUp(c echo.Context) error {
	var req admin.SignUpInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.SignUp(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, adminDomain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signup failed"})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AdminHandler) SignIn(c echo.Context) error {
	var req admin.SignInInput
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	res, err := h.uc.SignIn(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signin failed"})
	}
	return c.JSON(http.StatusOK, res)
}

// propertyDocumentFields maps the multipart field names of the listing form.
var propertyDocumentFields = []string{
	"property_image",
	"property_video",
	"property_amenities_image",
	"title_deed_document",
	"floor_layout_document",
	"company_details_document",
	"ownership_document",
	"other_document",
}

// CreateProperty takes the listing as a multipart form: scalar fields plus
// up to eight optional document files, stored before the record is written.
func (h *AdminHandler) CreateProperty(c echo.Context) error {
	req := admin.CreatePropertyInput{
		PropertyName:         c.FormValue("property_name"),
		PropertyLocation:     c.FormValue("property_location"),
		LockPeriod:           c.FormValue("lock_period"),
		SharedType:           c.FormValue("shared_type"),
		AboutSharedType:      c.FormValue("about_shared_type"),
		HoldingCompany:       c.FormValue("holding_company"),
		AboutHoldingCompany:  c.FormValue("about_holding_company"),
		AboutProperty:        c.FormValue("about_property"),
		AboutTotalAssetValue: c.FormValue("about_total_asset_value"),
		Faqs:                 c.FormValue("faqs"),
	}

	var err error
	if req.TotalAssetValue, err = strconv.ParseFloat(c.FormValue("total_asset_value"), 64); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid total_asset_value"})
	}
	if req.TotalToken, err = strconv.ParseFloat(c.FormValue("total_token"), 64); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid total_token"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	req.Documents = map[string]string{}
	for _, field := range propertyDocumentFields {
		fh, err := c.FormFile(field)
		if err != nil {
			continue // optional
		}
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable " + field + " file"})
		}
		url, err := h.files.Save(c.Request().Context(), fh.Filename, fh.Header.Get("Content-Type"), src)
		src.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not store " + field})
		}
		req.Documents[field] = url
	}

	p, err := h.uc.CreateProperty(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not create property"})
	}
	return c.JSON(http.StatusCreated, p)
}
