package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/yldio/xbbcode/bbcode"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/profile"
)

func (s *Service) deleteTagRule(ctx *gin.Context) {
	name := extractProfileNameFromCtx(ctx)

	if name == profile.DefaultName {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrBuiltinProfile))
		return
	}

	// tag names are stored lowercased, matching the tokenizer
	tagName := strings.ToLower(ctx.Param("tag"))
	if !bbcode.ValidTagName(tagName) {
		errField := ErrorField{"tag", fmt.Sprintf("tag name [%s] is invalid", tagName)}
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

	n, err := s.store.DeleteTagRule(ctx, db.DeleteTagRuleParams{
		ProfileID: stored.ID,
		Name:      tagName,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if n == 0 {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrTagNotFound))
		return
	}

	s.invalidateProfile(ctx, name)

	ctx.Status(http.StatusNoContent)
}
