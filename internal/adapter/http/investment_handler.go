package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hse-backend/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	PropertyID string  `json:"property_id" validate:"required,hex32"`
	Amount     float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	var req investReq
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}
	dto, err := h.uc.Invest(c.Request().Context(), investment.InvestInput{
		PropertyID: req.PropertyID,
		InvestorID: investorID(c),
		Amount:     req.Amount,
	})
	if err != nil {
		return rejectionResponse(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// rejectionResponse maps the allocation rejection taxonomy onto HTTP
// statuses. TRANSACTION_CONFLICT is the only kind worth an automatic retry
// and is flagged as such in the payload.
func rejectionResponse(c echo.Context, err error) error {
	rej, ok := investment.AsRejection(err)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "investment failed"})
	}

	var status int
	switch rej.Kind {
	case investment.KindNotFound:
		status = http.StatusNotFound
	case investment.KindInvalidAmount:
		status = http.StatusBadRequest
	case investment.KindInsufficientFunds:
		status = http.StatusUnprocessableEntity
	case investment.KindSoldOut, investment.KindOverallocation, investment.KindTxConflict:
		status = http.StatusConflict
	case investment.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}

	return c.JSON(status, map[string]any{
		"error":     rej.Reason,
		"kind":      string(rej.Kind),
		"retryable": rej.Kind.Retryable(),
	})
}

func (h *InvestmentHandler) Portfolio(c echo.Context) error {
	holdings, err := h.uc.Portfolio(c.Request().Context(), investorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load portfolio"})
	}
	return c.JSON(http.StatusOK, map[string]any{"holdings": holdings})
}

// PropertyInvestors is the back-office view of who holds a property.
func (h *InvestmentHandler) PropertyInvestors(c echo.Context) error {
	propertyID := c.Param("property_id")
	if propertyID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing property_id path param"})
	}
	out, err := h.uc.PropertyInvestors(c.Request().Context(), propertyID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "property not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"investors": out})
}
