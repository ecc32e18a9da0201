package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yldio/xbbcode/profile"
)

func (s *Service) deleteProfile(ctx *gin.Context) {
	name := extractProfileNameFromCtx(ctx)

	if name == profile.DefaultName {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrBuiltinProfile))
		return
	}

	n, err := s.store.DeleteProfile(ctx, name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if n == 0 {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrProfileNotFound))
		return
	}

	s.invalidateProfile(ctx, name)

	authPayload := extractAuthPayloadFromCtx(ctx)
	log.Info().
		Str("user", authPayload.Username).
		Str("profile", name).
		Msg("profile deleted")

	ctx.Status(http.StatusNoContent)
}

// invalidateProfile drops the compiled renderer and the cached renders of a
// changed profile. Cache failures are logged, not returned: the database is
// the source of truth and stale cache entries expire on their own TTL.
func (s *Service) invalidateProfile(ctx *gin.Context, name string) {
	s.renderers.drop(name)

	if err := s.redisStore.InvalidateProfile(ctx, name); err != nil {
		log.Warn().Err(err).Str("profile", name).Msg("render cache invalidation failed")
	}
}
