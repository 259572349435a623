package redis

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpTTL      = 10 * time.Minute
	maxAttempts = 5
)

// OTPStore keeps one-time verification codes in Redis.
// Keys: otp:<email> holds the code, otp:attempts:<email> counts failed
// verifications; both expire together.
type OTPStore struct {
	client *redis.Client
}

// NewOTPStore creates an OTPStore wrapping the given Redis client.
func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

// Issue stores a fresh code for the email, replacing any previous code and
// resetting the attempt counter.
func (s *OTPStore) Issue(ctx context.Context, email, code string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.codeKey(email), code, otpTTL)
	pipe.Del(ctx, s.attemptsKey(email))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("otp issue: %w", err)
	}
	return nil
}

// Verify checks the code for the email. A match consumes the code. A
// mismatch counts against maxAttempts; exhausting them burns the code so a
// new registration is required.
func (s *OTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, s.codeKey(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("otp verify: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		attempts, err := s.client.Incr(ctx, s.attemptsKey(email)).Result()
		if err != nil {
			return false, fmt.Errorf("otp verify: %w", err)
		}
		s.client.Expire(ctx, s.attemptsKey(email), otpTTL)
		if attempts >= maxAttempts {
			s.client.Del(ctx, s.codeKey(email), s.attemptsKey(email))
		}
		return false, nil
	}

	s.client.Del(ctx, s.codeKey(email), s.attemptsKey(email))
	return true, nil
}

func (s *OTPStore) codeKey(email string) string {
	return "otp:" + email
}

func (s *OTPStore) attemptsKey(email string) string {
	return "otp:attempts:" + email
}
