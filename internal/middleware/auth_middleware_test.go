package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/pkg/auth"
)

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "middleware-test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func protectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		role, _ := CurrentRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService)

	t.Run("missing_header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		protectedRouter(m).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage_token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		protectedRouter(m).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired_token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		token, _, _, _, err := expiredService.GenerateTokenPair(&models.User{ID: 1, Email: "a@mes.edu", Role: models.RoleStudent})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(NewAuthMiddleware(expiredService)).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "AUTH_003")
	})

	t.Run("valid_token_loads_identity", func(t *testing.T) {
		token, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 7, Email: "jane@mes.edu", Role: models.RoleAlumni})
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(m).ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"userId":7`)
		assert.Contains(t, recorder.Body.String(), `"role":"alumni"`)
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService)

	studentToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 2, Email: "s@mes.edu", Role: models.RoleStudent})
	require.NoError(t, err)
	adminToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{ID: 1, Email: "admin@mes.edu", Role: models.RoleAdmin})
	require.NoError(t, err)

	router := protectedRouter(m, m.RoleRequired(models.RoleAdmin))

	t.Run("wrong_role_forbidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+studentToken)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("allowed_role_passes", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
