package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	investorDomain "hse-backend/internal/domain/investor"
	propertyDomain "hse-backend/internal/domain/property"
	"hse-backend/internal/usecase/bookmark"
)

type BookmarkHandler struct{ uc *bookmark.Usecase }

func NewBookmarkHandler(uc *bookmark.Usecase) *BookmarkHandler { return &BookmarkHandler{uc: uc} }

type addBookmarkReq struct {
	PropertyID string `json:"property_id" validate:"required,hex32"`
}

func (h *BookmarkHandler) Add(c echo.Context) error {
	var req addBookmarkReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	err := h.uc.Add(c.Request().Context(), investorID(c), req.PropertyID)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, map[string]string{"status": "bookmarked"})
	case errors.Is(err, bookmark.ErrAlreadyBookmarked):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "property already bookmarked"})
	case errors.Is(err, propertyDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
	case errors.Is(err, investorDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "account not found"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not bookmark"})
	}
}

func (h *BookmarkHandler) ListMine(c echo.Context) error {
	out, err := h.uc.ListMine(c.Request().Context(), investorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load bookmarks"})
	}
	return c.JSON(http.StatusOK, map[string]any{"bookmarks": out})
}
