package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yldio/xbbcode/profile"
)

const ctxProfileNameKey = "profile_name"

// This middleware checks the mandatory profile name parameter in the URL.
//
// I chose to use middleware instead of Gin's URI binding because it is
// harder to produce a human-readable error message with the binder than
// with manual validation. It also makes handlers cleaner.
func (s *Service) profileNameMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name := ctx.Param("profile")

		if !profile.ValidName(name) {
			field := ErrorField{"profile", fmt.Sprintf("profile name [%s] is invalid", name)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidProfileName, field),
			)
			return
		}

		ctx.Set(ctxProfileNameKey, name)
		ctx.Next()
	}
}

// Helper function to get the profile name after middleware check.
func extractProfileNameFromCtx(ctx *gin.Context) string {
	return ctx.MustGet(ctxProfileNameKey).(string)
}
