package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrOTPExpired = errors.New("otp reference expired or not found")

// OTPStore keeps the provider's verification reference per contact (email
// address or mobile number) until the code expires. Keying per contact means
// parallel verifications do not clobber each other, and the state survives
// process restarts and multiple instances.
type OTPStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOTPStore(rdb *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{rdb: rdb, ttl: ttl}
}

func otpKey(contact string) string { return "otp:ref:" + contact }

func (s *OTPStore) StoreReference(ctx context.Context, contact, reference string) error {
	return s.rdb.Set(ctx, otpKey(contact), reference, s.ttl).Err()
}

func (s *OTPStore) Reference(ctx context.Context, contact string) (string, error) {
	v, err := s.rdb.Get(ctx, otpKey(contact)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrOTPExpired
	}
	return v, err
}
