package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"hse-backend/internal/adapter/middleware"
	investorDomain "hse-backend/internal/domain/investor"
	propertyDomain "hse-backend/internal/domain/property"
	"hse-backend/internal/domain/uow"
	"hse-backend/internal/testutil/investmentmock"
	"hse-backend/internal/testutil/investormock"
	"hse-backend/internal/testutil/propertymock"
	"hse-backend/internal/testutil/uowmock"
	uc "hse-backend/internal/usecase/investment"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func authedContext(e *echo.Echo, method, target string, body *bytes.Reader, investorID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextInvestorID, investorID)
	return c, rec
}

// passthroughUoW hands the closure fixed property and investor rows and
// reports the closure's error, like a transaction whose writes all succeed.
func passthroughUoW(p *propertyDomain.Property, inv *investorDomain.Investor) *uowmock.UoW {
	m := uowmock.New()
	m.WithinInvestmentTxFn = func(ctx context.Context, propertyID, investorID string, fn func(r uow.Repos, pp *propertyDomain.Property, ii *investorDomain.Investor) error) error {
		r := uow.Repos{
			Properties:  &propertymock.Repo{SaveFn: func(context.Context, *propertyDomain.Property) error { return nil }},
			Investors:   &investormock.Repo{SaveFn: func(context.Context, *investorDomain.Investor) error { return nil }},
			Investments: &investmentmock.Repo{},
		}
		return fn(r, p, inv)
	}
	return m
}

// -------- tests --------

func TestInvest_Success(t *testing.T) {
	e := newEchoWithValidator()
	propID := strings.Repeat("a", 32)
	invID := strings.Repeat("b", 32)

	p := &propertyDomain.Property{
		PropertyID:          propID,
		TotalAssetValue:     100000,
		TotalToken:          1000,
		TotalAssetValueLeft: 100000,
		TokenLeft:           1000,
	}
	inv := &investorDomain.Investor{InvestorID: invID, FundsAvailable: 60000}

	usecase := uc.NewUsecase(passthroughUoW(p, inv), &propertymock.Repo{}, &investormock.Repo{}, &investmentmock.Repo{}, nil)
	h := NewInvestmentHandler(usecase)

	c, rec := authedContext(e, stdhttp.MethodPost, "/api/investor/invest",
		mustJSON(map[string]any{"property_id": propID, "amount": 50000}), invID)

	if err := h.Invest(c); err != nil {
		t.Fatalf("Invest error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var got uc.InvestmentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Tokens != 500 || got.Percent != 50 || got.TokenPrice != 100 {
		t.Fatalf("unexpected dto: %+v", got)
	}
	if len(got.InvestmentID) != 32 {
		t.Fatalf("investment id = %q", got.InvestmentID)
	}
}

func TestInvest_RejectionStatuses(t *testing.T) {
	e := newEchoWithValidator()
	propID := strings.Repeat("a", 32)
	invID := strings.Repeat("b", 32)

	cases := []struct {
		name       string
		property   propertyDomain.Property
		funds      float64
		amount     float64
		wantStatus int
		wantKind   string
	}{
		{
			name:       "insufficient funds",
			property:   propertyDomain.Property{TotalAssetValue: 100000, TotalToken: 1000, TotalAssetValueLeft: 100000, TokenLeft: 1000},
			funds:      100,
			amount:     50000,
			wantStatus: stdhttp.StatusUnprocessableEntity,
			wantKind:   "INSUFFICIENT_FUNDS",
		},
		{
			name:       "sold out",
			property:   propertyDomain.Property{TotalAssetValue: 100000, TotalToken: 1000, TotalAssetValueLeft: 0, TokenLeft: 0},
			funds:      60000,
			amount:     100,
			wantStatus: stdhttp.StatusConflict,
			wantKind:   "SOLD_OUT",
		},
		{
			name:       "overallocation",
			property:   propertyDomain.Property{TotalAssetValue: 100000, TotalToken: 1000, TotalAssetValueLeft: 100, TokenLeft: 1},
			funds:      60000,
			amount:     5000,
			wantStatus: stdhttp.StatusConflict,
			wantKind:   "OVERALLOCATION",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.property
			p.PropertyID = propID
			inv := &investorDomain.Investor{InvestorID: invID, FundsAvailable: tc.funds}

			usecase := uc.NewUsecase(passthroughUoW(&p, inv), &propertymock.Repo{}, &investormock.Repo{}, &investmentmock.Repo{}, nil)
			h := NewInvestmentHandler(usecase)

			c, rec := authedContext(e, stdhttp.MethodPost, "/api/investor/invest",
				mustJSON(map[string]any{"property_id": propID, "amount": tc.amount}), invID)

			if err := h.Invest(c); err != nil {
				t.Fatalf("Invest error: %v", err)
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad json: %v", err)
			}
			if body["kind"] != tc.wantKind {
				t.Fatalf("kind = %v, want %s", body["kind"], tc.wantKind)
			}
			if body["retryable"] != false {
				t.Fatalf("retryable = %v, want false", body["retryable"])
			}
		})
	}
}

func TestInvest_UnknownProperty(t *testing.T) {
	e := newEchoWithValidator()
	m := uowmock.New()
	m.WithinInvestmentTxFn = func(context.Context, string, string, func(uow.Repos, *propertyDomain.Property, *investorDomain.Investor) error) error {
		return gorm.ErrRecordNotFound
	}
	usecase := uc.NewUsecase(m, &propertymock.Repo{}, &investormock.Repo{}, &investmentmock.Repo{}, nil)
	h := NewInvestmentHandler(usecase)

	c, rec := authedContext(e, stdhttp.MethodPost, "/api/investor/invest",
		mustJSON(map[string]any{"property_id": strings.Repeat("a", 32), "amount": 100}), strings.Repeat("b", 32))

	if err := h.Invest(c); err != nil {
		t.Fatalf("Invest error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestInvest_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := NewInvestmentHandler(uc.NewUsecase(uowmock.New(), &propertymock.Repo{}, &investormock.Repo{}, &investmentmock.Repo{}, nil))

	c, rec := authedContext(e, stdhttp.MethodPost, "/api/investor/invest",
		mustJSON(map[string]any{"property_id": "short", "amount": 10.123}), strings.Repeat("b", 32))

	if err := h.Invest(c); err != nil {
		t.Fatalf("Invest error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var got ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(got.Details, "PropertyID", "32-char lowercase hex") {
		t.Fatalf("missing property id error: %+v", got.Details)
	}
	if !containsFieldMsg(got.Details, "Amount", "2 decimal places") {
		t.Fatalf("missing amount error: %+v", got.Details)
	}
}
