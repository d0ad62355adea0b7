package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-hiring-portal/internal/delivery/http/middleware"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/internal/policy"
	"go-hiring-portal/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens, policy.Routes))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/v1/vacancies", ok)
	r.GET("/v1/vacancies/all", ok)
	r.GET("/v1/users/profile", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(string(domain.KeyUserID))})
	})
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	userToken, err := tokens.Issue(1, "jane@example.com", domain.RoleUser)
	assert.NoError(t, err)
	hrToken, err := tokens.Issue(2, "hr@example.com", domain.RoleHrManager)
	assert.NoError(t, err)

	t.Run("Public route needs no token", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/vacancies", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Protected route without token is 401", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/users/profile", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Garbage token is 401", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/users/profile", "not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired token is 401", func(t *testing.T) {
		expiredSvc := auth.NewTokenService("test-secret", -time.Minute)
		expired, err := expiredSvc.Issue(1, "jane@example.com", domain.RoleUser)
		assert.NoError(t, err)

		w := doRequest(r, "GET", "/v1/users/profile", expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Candidate on HR route is 403", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/vacancies/all", userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("HR on HR route is allowed", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/vacancies/all", hrToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Identity lands in the request context", func(t *testing.T) {
		w := doRequest(r, "GET", "/v1/users/profile", userToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":1`)
	})
}
