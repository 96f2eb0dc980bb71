package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "nagarhub"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("uid-1", "citizen", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", (*claims)["uid"])
	assert.Equal(t, "citizen", (*claims)["role"])
	assert.Equal(t, "nagarhub", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("uid-1", "citizen", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestVerifyIDToken(t *testing.T) {
	claims := jwtlib.MapClaims{
		"uid":          "uid-1",
		"phone_number": "+919999999999",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	identity, err := VerifyIDToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "+919999999999", identity.PhoneNumber)
}

func TestVerifyIDToken_Expired(t *testing.T) {
	claims := jwtlib.MapClaims{
		"uid": "uid-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyIDToken(token, "test-secret")
	assert.Error(t, err)
}

func TestVerifyIDToken_MissingUID(t *testing.T) {
	claims := jwtlib.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyIDToken(token, "test-secret")
	assert.Error(t, err)
}

func TestVerifyIDToken_Garbage(t *testing.T) {
	_, err := VerifyIDToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
