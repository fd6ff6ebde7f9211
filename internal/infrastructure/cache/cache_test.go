package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestOpenRedis_Success(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := OpenRedis(mr.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestOTPStore_RoundTrip(t *testing.T) {
	c := newTestClient(t)
	s := NewOTPStore(c, 5*time.Minute)
	ctx := context.Background()

	if err := s.StoreReference(ctx, "investor@example.com", "ref-123"); err != nil {
		t.Fatalf("StoreReference: %v", err)
	}
	got, err := s.Reference(ctx, "investor@example.com")
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	if got != "ref-123" {
		t.Fatalf("reference = %q, want ref-123", got)
	}

	// Distinct contacts do not clobber each other.
	if err := s.StoreReference(ctx, "2349050779526", "ref-456"); err != nil {
		t.Fatalf("StoreReference: %v", err)
	}
	got, _ = s.Reference(ctx, "investor@example.com")
	if got != "ref-123" {
		t.Fatalf("email reference overwritten: %q", got)
	}
}

func TestOTPStore_Missing(t *testing.T) {
	c := newTestClient(t)
	s := NewOTPStore(c, time.Minute)

	_, err := s.Reference(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("want ErrOTPExpired, got %v", err)
	}
}

func TestRefreshTokenStore_Lifecycle(t *testing.T) {
	c := newTestClient(t)
	s := NewRefreshTokenStore(c)
	ctx := context.Background()
	const tok = "opaque.refresh.token"

	ok, err := s.Contains(ctx, tok)
	if err != nil || ok {
		t.Fatalf("Contains before Add = %v, %v", ok, err)
	}

	if err := s.Add(ctx, tok, time.Hour); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ok, err = s.Contains(ctx, tok)
	if err != nil || !ok {
		t.Fatalf("Contains after Add = %v, %v", ok, err)
	}

	if err := s.Remove(ctx, tok); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	ok, _ = s.Contains(ctx, tok)
	if ok {
		t.Fatal("token still valid after Remove")
	}
}
