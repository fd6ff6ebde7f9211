package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"hse-backend/internal/adapter/middleware"
)

// ---- helpers ----

// bindAndValidate binds the JSON body and runs the validator. When handled
// is true the error response has already been written and the handler must
// return err as-is.
func bindAndValidate(c echo.Context, req any) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return true, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return false, nil
}

func investorID(c echo.Context) string {
	s, _ := c.Get(middleware.ContextInvestorID).(string)
	return s
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
