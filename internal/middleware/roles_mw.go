package middleware

import (
	"net/http"

	"github.com/SaddamHussainSafi/Smart-Job-Tracking/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// It must run after JWTAuthMiddleware and fails closed with 403.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in token, ensure JWT middleware runs first"})
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid role type in token"})
			return
		}

		isAllowed := false
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// EmployerMiddleware checks if the user is an employer
func EmployerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleEmployer)
}

// JobSeekerMiddleware checks if the user is a job seeker
func JobSeekerMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleJobSeeker)
}
