package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

// CheckRole lets the request through only when the authenticated user has one
// of roles. It must run after RequireAuth.
func CheckRole(roles ...string) gin.HandlerFunc {
	allowed := slices.Clone(roles)
	return func(ctx *gin.Context) {
		user, err := utilities.ExtractUser(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		if !slices.Contains(allowed, user.Role.Name) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{
				Error: "User doesn't have permission to access",
			})
			return
		}
		ctx.Next()
	}
}
