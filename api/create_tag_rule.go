package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/profile"
)

func (s *Service) createTagRule(ctx *gin.Context) {
	name := extractProfileNameFromCtx(ctx)

	if name == profile.DefaultName {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrBuiltinProfile))
		return
	}

	var def profile.TagDef
	if err := ctx.ShouldBindJSON(&def); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if err := def.Validate(); err != nil {
		errField := ErrorField{"name", err.Error()}
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, errField),
		)
		return
	}

	stored, err := s.store.GetProfileByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrProfileNotFound))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	tagRule, err := s.store.CreateTagRule(ctx, db.CreateTagRuleParams{
		ProfileID:   stored.ID,
		Name:        strings.ToLower(def.Name),
		Template:    def.Template,
		SelfClosing: def.SelfClosing,
		NoCode:      def.NoCode,
	})
	if err != nil {
		if err = db.TranslateError(err); errors.Is(err, db.ErrDuplicateTagRule) {
			ctx.JSON(http.StatusConflict, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	s.invalidateProfile(ctx, name)

	ctx.JSON(http.StatusOK, tagRule)
}
