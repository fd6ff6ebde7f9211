package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testInvestorID = "11112222333344445555666677778888"

// stubAuth plants an investor id the way InvestorAuth would.
func stubAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(ContextInvestorID, testInvestorID)
		return next(c)
	}
}

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(stubAuth)
	e.Use(Idempotency(rdb, ttl, nil))
	e.POST("/invest", handler)
	e.GET("/invest", handler) // non-mutating bypass
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func TestBypassOnGET(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})

	rec := doReq(t, e, http.MethodGet, "/invest", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMissingRequestID(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error { return nil })

	rec := doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, map[string]int{"amount": 1}), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, map[string]int{"amount": 1}),
		map[string]string{"X-Request-Id": "not a valid id"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad format: status = %d, want 400", rec.Code)
	}
}

func TestReplayReturnsRecordedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	var calls int32
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		n := atomic.AddInt32(&calls, 1)
		return c.JSON(http.StatusCreated, map[string]any{"call": n})
	})

	hdr := map[string]string{"X-Request-Id": strings.Repeat("d", 32)}
	body := map[string]int{"amount": 500}

	first := doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, body), hdr)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d, want 201", first.Code)
	}

	second := doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, body), hdr)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("handler ran %d times, want 1", got)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replay body %q != original %q", second.Body.String(), first.Body.String())
	}
}

func TestReusedIDWithDifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]any{"ok": true})
	})

	hdr := map[string]string{"X-Request-Id": strings.Repeat("e", 32)}

	rec := doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, map[string]int{"amount": 500}), hdr)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first status = %d", rec.Code)
	}

	rec = doReq(t, e, http.MethodPost, "/invest", mkJSONBody(t, map[string]int{"amount": 999}), hdr)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body: status = %d, want 409", rec.Code)
	}
}

func TestInProgressConflict(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]any{"ok": true})
	})

	// Simulate a request still holding the provisional lock.
	body := mkJSONBody(t, map[string]int{"amount": 500})
	raw, _ := io.ReadAll(body)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash(raw), RequestID: strings.Repeat("f", 32)}
	payload, _ := json.Marshal(entry)
	key := buildKey(http.MethodPost, "/invest", testInvestorID, strings.Repeat("f", 32))
	if err := rdb.Set(context.Background(), key, payload, time.Minute).Err(); err != nil {
		t.Fatalf("seed lock: %v", err)
	}

	rec := doReq(t, e, http.MethodPost, "/invest", bytes.NewReader(raw),
		map[string]string{"X-Request-Id": strings.Repeat("f", 32)})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestKeysAreScopedPerInvestor(t *testing.T) {
	if k1, k2 := buildKey("POST", "/invest", "inv-a", "req"), buildKey("POST", "/invest", "inv-b", "req"); k1 == k2 {
		t.Fatal("keys must differ per investor")
	}
}
