package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/yldio/xbbcode/db/sqlc"
)

type ListProfilesQuery struct {
	Offset int32 `form:"offset" json:"offset" binding:"min=0"`
	Limit  int32 `form:"limit" json:"limit" binding:"min=1,max=100"`
}

type ListProfilesResponse struct {
	Profiles []db.Profile `json:"profiles"`
}

func (s *Service) listProfiles(ctx *gin.Context) {
	// pre-filled with default values
	req := ListProfilesQuery{
		Offset: 0,
		Limit:  20,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	profiles, err := s.store.ListProfiles(ctx, db.ListProfilesParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ListProfilesResponse{profiles})
}
