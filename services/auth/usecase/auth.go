package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	jwtpkg "github.com/nagaralert/nagarhub/internal/pkg/jwt"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/auth"
)

// MobileSync resolves a verified phone credential to the next step the
// client should run: a brand-new subject must enroll an email, a subject
// mid-enrollment must finish it, and a verified subject is logged in.
func (u *AuthUC) MobileSync(ctx context.Context, req *models.MobileSyncRequest) (*models.MobileSyncResponse, error) {
	identity, err := jwtpkg.VerifyIDToken(req.IDToken, u.cfg.JWT.Secret)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	role := normalizeRole(req.Role)

	profile, err := u.authRepo.GetProfile(ctx, role, identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile == nil {
		return &models.MobileSyncResponse{
			Status:  models.SyncStatusNewUser,
			Message: "Email verification required",
		}, nil
	}

	if !profile.EmailVerified {
		return &models.MobileSyncResponse{
			Status:  models.SyncStatusEmailPending,
			Message: "Email verification pending",
		}, nil
	}

	if err := u.authRepo.TouchLastLogin(ctx, role, identity.UID); err != nil {
		logger.WarnCtx(ctx, "Failed to stamp last login",
			logger.String("uid", identity.UID),
			logger.Err(err))
	}

	return &models.MobileSyncResponse{
		Status: models.SyncStatusLoginSuccess,
		User:   profile,
	}, nil
}

// RequestChallenge issues a fresh verification code for the subject and
// emails it. A repeat request overwrites the previous challenge, so only the
// newest code ever verifies.
func (u *AuthUC) RequestChallenge(ctx context.Context, req *models.SendOTPRequest) error {
	identity, err := jwtpkg.VerifyIDToken(req.IDToken, u.cfg.JWT.Secret)
	if err != nil {
		return auth.ErrInvalidToken
	}

	role := normalizeRole(req.Role)
	if role == models.RoleAdmin {
		secret := []byte(u.cfg.Auth.AdminSecretCode)
		if len(secret) == 0 || subtle.ConstantTimeCompare(secret, []byte(req.SecretCode)) != 1 {
			return auth.ErrAdminSecretMismatch
		}
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	ttl := time.Duration(u.cfg.Auth.OTPExpiryMinutes) * time.Minute
	challenge := &models.OtpChallenge{
		UID:       identity.UID,
		Code:      code,
		Email:     req.Email,
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := u.authRepo.StoreChallenge(ctx, challenge, ttl); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	if err := u.authGW.SendOTPEmail(ctx, req.Email, code); err != nil {
		return fmt.Errorf("failed to dispatch OTP email: %w", err)
	}

	logger.InfoCtx(ctx, "OTP challenge issued",
		logger.String("uid", identity.UID),
		logger.String("role", role))
	return nil
}

// Finalize consumes the verification code. The profile write must succeed
// before the challenge is deleted, so a crash between the two leaves a
// still-valid code rather than a locked-out subject.
func (u *AuthUC) Finalize(ctx context.Context, req *models.FinalizeRequest) (*models.AuthResponse, error) {
	identity, err := jwtpkg.VerifyIDToken(req.IDToken, u.cfg.JWT.Secret)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	challenge, err := u.authRepo.GetChallenge(ctx, identity.UID)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge == nil || challenge.Code != req.OTP {
		return nil, auth.ErrInvalidOTP
	}
	if challenge.Expired(time.Now()) {
		return nil, auth.ErrOTPExpired
	}

	role := normalizeRole(req.Role)
	profile := &models.Profile{
		UID:           identity.UID,
		Role:          role,
		Name:          req.FullName,
		Email:         challenge.Email,
		PhoneNumber:   identity.PhoneNumber,
		EmailVerified: true,
	}

	if err := u.authRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	// Delete only after the profile write landed; the TTL cleans up if
	// this fails.
	if err := u.authRepo.DeleteChallenge(ctx, identity.UID); err != nil {
		logger.WarnCtx(ctx, "Failed to delete consumed challenge",
			logger.String("uid", identity.UID),
			logger.Err(err))
	}

	token, expiresAt, err := jwtpkg.GenerateToken(identity.UID, role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	logger.InfoCtx(ctx, "Auth finalized",
		logger.String("uid", identity.UID),
		logger.String("role", role))

	return &models.AuthResponse{
		Token:     token,
		UserID:    identity.UID,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

// generateOTPCode returns a 6-digit numeric code from crypto/rand
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
