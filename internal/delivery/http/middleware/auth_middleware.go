package middleware

import (
	"net/http"
	"strings"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/internal/domain"
	"go-hiring-portal/internal/policy"
	"go-hiring-portal/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware evaluates the route policy once per request, before the
// handler. Public routes pass through untouched. Everything else needs a
// valid bearer token (401 otherwise) whose role the policy permits
// (403 otherwise). On success the identity is copied into the request
// context; no ambient global carries it.
func AuthMiddleware(tokens *auth.TokenService, routes policy.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		verdict := routes.Evaluate(c.Request.Method, c.Request.URL.Path)
		if verdict.Public {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		if !verdict.Allows(claims.Role) {
			response.Error(c, http.StatusForbidden, "Insufficient role for this resource", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUserEmail), claims.Email)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}
