package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	propertyDomain "hse-backend/internal/domain/property"
	"hse-backend/internal/usecase/property"
)

type PropertyHandler struct{ uc *property.Usecase }

func NewPropertyHandler(uc *property.Usecase) *PropertyHandler { return &PropertyHandler{uc: uc} }

func (h *PropertyHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load properties"})
	}
	return c.JSON(http.StatusOK, map[string]any{"properties": out})
}

func (h *PropertyHandler) Get(c echo.Context) error {
	propertyID := c.Param("property_id")
	if propertyID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing property_id path param"})
	}
	p, err := h.uc.Get(c.Request().Context(), propertyID)
	if err != nil {
		if errors.Is(err, propertyDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load property"})
	}
	return c.JSON(http.StatusOK, p)
}
