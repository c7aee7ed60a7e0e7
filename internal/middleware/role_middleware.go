package middleware

import (
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/apperror"
	"github.com/niranjan-18-25/WorkOrbit/internal/shared/response"
	"github.com/niranjan-18-25/WorkOrbit/internal/user"

	"github.com/gin-gonic/gin"
)

// RequireRole is the single role dispatch point in the codebase. The role
// is a closed two-variant enum; anything outside it is rejected here so
// handlers never re-check it.
func RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(c.GetString("role"))

		switch role {
		case user.RoleAdmin, user.RoleEmployee:
			if role != required {
				response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
				c.Abort()
				return
			}
		default:
			response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
