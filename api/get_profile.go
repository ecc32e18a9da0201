package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/yldio/xbbcode/db/sqlc"
)

type GetProfileResponse struct {
	Profile db.Profile   `json:"profile"`
	Tags    []db.TagRule `json:"tags"`
}

func (s *Service) getProfile(ctx *gin.Context) {
	name := extractProfileNameFromCtx(ctx)

	stored, err := s.store.GetProfileByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrProfileNotFound))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	tags, err := s.store.ListTagRules(ctx, stored.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, GetProfileResponse{
		Profile: stored,
		Tags:    tags,
	})
}
