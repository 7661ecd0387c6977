package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 24)
	userID := "4f7c1d1e-8a8e-4a6b-9a3e-1d2f3a4b5c6d"
	role := "job_seeker"

	tokenString, err := jwtUtil.GenerateToken(userID, role)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
	assert.Equal(t, userID, claims.Subject)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 24)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_ExpiryBoundary(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 24)

	signed := func(expiresIn time.Duration) string {
		claims := &JWTClaims{
			UserID: "user-1",
			Role:   "employer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(expiresIn - 24*time.Hour)),
				Subject:   "user-1",
			},
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte("secret"))
		assert.NoError(t, err)
		return s
	}

	// Issued 23h59m ago: still inside the 24h window
	claims, err := jwtUtil.ValidateToken(signed(time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	// Issued 24h01m ago: past expiry
	_, err = jwtUtil.ValidateToken(signed(-time.Minute))
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", 24)
	jwtUtil2 := NewJWTUtil("secret2", 24)

	tokenString, _ := jwtUtil1.GenerateToken("user-1", "employer")

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 24)
	claims := &JWTClaims{
		UserID: "user-1",
		Role:   "job_seeker",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, _ := token.SignedString([]byte("secret"))

	// HS384 is still HMAC, so the method check passes but validation
	// only accepts tokens this util issued itself
	parsed, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)

	// A non-HMAC algorithm must be rejected outright
	_, err = jwtUtil.ValidateToken("eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9.e30.sig")
	assert.Error(t, err)
}
