package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"
	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func protectedRouter(jwtUtil *utils.JWTUtil, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuthMiddleware(jwtUtil)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(AuthUserKey),
			"role":    c.MustGet(AuthRoleKey),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter(utils.NewJWTUtil("secret", 24))

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter(utils.NewJWTUtil("secret", 24))

	for _, header := range []string{"Bearer", "Basic abc123", "Bearer one two"} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	r := protectedRouter(utils.NewJWTUtil("secret", 24))

	w := doRequest(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := utils.NewJWTUtil("secret", -1)
	token, _ := expired.GenerateToken("user-1", model.RoleJobSeeker)

	r := protectedRouter(utils.NewJWTUtil("secret", 24))
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	token, _ := jwtUtil.GenerateToken("user-1", model.RoleEmployer)

	r := protectedRouter(jwtUtil)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"employer"`)
}

func TestRoleMiddleware_WrongRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	token, _ := jwtUtil.GenerateToken("user-1", model.RoleJobSeeker)

	r := protectedRouter(jwtUtil, EmployerMiddleware())
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddleware_AllowedRole(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 24)
	token, _ := jwtUtil.GenerateToken("user-1", model.RoleEmployer)

	r := protectedRouter(jwtUtil, EmployerMiddleware())
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
