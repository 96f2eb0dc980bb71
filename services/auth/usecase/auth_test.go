package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/auth"
	"github.com/nagaralert/nagarhub/services/auth/mocks"
)

const testJWTSecret = "test-secret"

func setupAuthUCTest(t *testing.T) (*AuthUC, *mocks.MockAuthRepo, *mocks.MockAuthGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAuthRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)

	cfg := &models.Config{}
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.Expiration = 60
	cfg.Auth.AdminSecretCode = "super-secret"
	cfg.Auth.OTPExpiryMinutes = 10

	uc := NewAuthUC(cfg, mockRepo, mockGW)
	return uc, mockRepo, mockGW, ctrl
}

func signIDToken(t *testing.T, uid, phone string) string {
	claims := jwt.MapClaims{
		"uid":          uid,
		"phone_number": phone,
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func TestMobileSync_NewUser(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), models.RoleCitizen, "uid-1").
		Return(nil, nil)

	resp, err := uc.MobileSync(context.Background(), &models.MobileSyncRequest{IDToken: idToken})

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusNewUser, resp.Status)
}

func TestMobileSync_EmailPending(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	mockRepo.EXPECT().
		GetProfile(gomock.Any(), models.RoleCitizen, "uid-1").
		Return(&models.Profile{UID: "uid-1", EmailVerified: false}, nil)

	resp, err := uc.MobileSync(context.Background(), &models.MobileSyncRequest{IDToken: idToken})

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusEmailPending, resp.Status)
}

func TestMobileSync_LoginSuccess(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	profile := &models.Profile{UID: "uid-1", Email: "a@b.c", EmailVerified: true}
	idToken := signIDToken(t, "uid-1", "+919999999999")

	mockRepo.EXPECT().
		GetProfile(gomock.Any(), models.RoleCitizen, "uid-1").
		Return(profile, nil)
	mockRepo.EXPECT().
		TouchLastLogin(gomock.Any(), models.RoleCitizen, "uid-1").
		Return(nil)

	resp, err := uc.MobileSync(context.Background(), &models.MobileSyncRequest{IDToken: idToken})

	require.NoError(t, err)
	assert.Equal(t, models.SyncStatusLoginSuccess, resp.Status)
	assert.Equal(t, profile, resp.User)
}

func TestMobileSync_InvalidToken(t *testing.T) {
	uc, _, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	_, err := uc.MobileSync(context.Background(), &models.MobileSyncRequest{IDToken: "garbage"})

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequestChallenge_CitizenStoresAndSends(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	var storedCode string

	mockRepo.EXPECT().
		StoreChallenge(gomock.Any(), gomock.Any(), 10*time.Minute).
		DoAndReturn(func(_ context.Context, ch *models.OtpChallenge, _ time.Duration) error {
			assert.Equal(t, "uid-1", ch.UID)
			assert.Equal(t, "a@b.c", ch.Email)
			assert.Len(t, ch.Code, 6)
			storedCode = ch.Code
			return nil
		})
	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), "a@b.c", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, code string) error {
			assert.Equal(t, storedCode, code, "emailed code must match the stored challenge")
			return nil
		})

	err := uc.RequestChallenge(context.Background(), &models.SendOTPRequest{
		IDToken: idToken,
		Email:   "a@b.c",
	})

	assert.NoError(t, err)
}

func TestRequestChallenge_AdminWrongSecret(t *testing.T) {
	uc, _, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")

	err := uc.RequestChallenge(context.Background(), &models.SendOTPRequest{
		IDToken:    idToken,
		Email:      "a@b.c",
		Role:       models.RoleAdmin,
		SecretCode: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrAdminSecretMismatch)
}

func TestRequestChallenge_AdminCorrectSecret(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	mockRepo.EXPECT().StoreChallenge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTPEmail(gomock.Any(), "a@b.c", gomock.Any()).Return(nil)

	err := uc.RequestChallenge(context.Background(), &models.SendOTPRequest{
		IDToken:    idToken,
		Email:      "a@b.c",
		Role:       models.RoleAdmin,
		SecretCode: "super-secret",
	})

	assert.NoError(t, err)
}

func TestRequestChallenge_MailFailurePropagates(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	mockRepo.EXPECT().StoreChallenge(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().
		SendOTPEmail(gomock.Any(), "a@b.c", gomock.Any()).
		Return(errors.New("smtp timeout"))

	err := uc.RequestChallenge(context.Background(), &models.SendOTPRequest{
		IDToken: idToken,
		Email:   "a@b.c",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidToken)
}

func TestFinalize_Success(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	challenge := &models.OtpChallenge{
		UID:       "uid-1",
		Code:      "123456",
		Email:     "a@b.c",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "uid-1").Return(challenge, nil)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Profile) error {
			assert.Equal(t, "uid-1", p.UID)
			assert.Equal(t, "a@b.c", p.Email)
			assert.Equal(t, "+919999999999", p.PhoneNumber)
			assert.True(t, p.EmailVerified)
			return nil
		})
	mockRepo.EXPECT().DeleteChallenge(gomock.Any(), "uid-1").Return(nil)

	resp, err := uc.Finalize(context.Background(), &models.FinalizeRequest{
		IDToken:  idToken,
		OTP:      "123456",
		FullName: "Asha Rao",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "uid-1", resp.UserID)
	assert.Equal(t, models.RoleCitizen, resp.Role)
}

func TestFinalize_NoChallenge(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	mockRepo.EXPECT().GetChallenge(gomock.Any(), "uid-1").Return(nil, nil)

	_, err := uc.Finalize(context.Background(), &models.FinalizeRequest{
		IDToken: idToken,
		OTP:     "123456",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestFinalize_WrongCode(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	challenge := &models.OtpChallenge{
		UID:       "uid-1",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	mockRepo.EXPECT().GetChallenge(gomock.Any(), "uid-1").Return(challenge, nil)

	_, err := uc.Finalize(context.Background(), &models.FinalizeRequest{
		IDToken: idToken,
		OTP:     "654321",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
}

func TestFinalize_ExpiredCode(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	challenge := &models.OtpChallenge{
		UID:       "uid-1",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	mockRepo.EXPECT().GetChallenge(gomock.Any(), "uid-1").Return(challenge, nil)

	_, err := uc.Finalize(context.Background(), &models.FinalizeRequest{
		IDToken: idToken,
		OTP:     "123456",
	})

	assert.ErrorIs(t, err, auth.ErrOTPExpired)
}

func TestFinalize_ProfileWriteFailureKeepsChallenge(t *testing.T) {
	uc, mockRepo, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	idToken := signIDToken(t, "uid-1", "+919999999999")
	challenge := &models.OtpChallenge{
		UID:       "uid-1",
		Code:      "123456",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	mockRepo.EXPECT().GetChallenge(gomock.Any(), "uid-1").Return(challenge, nil)
	mockRepo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		Return(errors.New("db unavailable"))
	// No DeleteChallenge expectation: the code must stay consumable.

	_, err := uc.Finalize(context.Background(), &models.FinalizeRequest{
		IDToken: idToken,
		OTP:     "123456",
	})

	assert.Error(t, err)
}

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := generateOTPCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
