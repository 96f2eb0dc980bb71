package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/nagaralert/nagarhub/internal/pkg/constants"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// StoreChallenge writes the challenge under the subject's key with the given
// TTL. An existing challenge for the subject is overwritten, so the newest
// code is always the only live one.
func (r *AuthRepo) StoreChallenge(ctx context.Context, challenge *models.OtpChallenge, ttl time.Duration) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP challenge: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, challenge.UID)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}
	return nil
}

// GetChallenge loads the live challenge for a subject. A missing key returns
// (nil, nil) so the caller can treat it as an invalid code.
func (r *AuthRepo) GetChallenge(ctx context.Context, uid string) (*models.OtpChallenge, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, uid)
	raw, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP challenge: %w", err)
	}

	var challenge models.OtpChallenge
	if err := json.Unmarshal([]byte(raw), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP challenge: %w", err)
	}
	return &challenge, nil
}

// DeleteChallenge removes the subject's challenge after a successful
// finalize
func (r *AuthRepo) DeleteChallenge(ctx context.Context, uid string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, uid)
	return r.redisClient.Delete(ctx, key)
}
