package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/profile"
	"github.com/yldio/xbbcode/util"
)

func (s *Service) createProfile(ctx *gin.Context) {
	var def profile.Definition
	if err := ctx.ShouldBindJSON(&def); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	if def.Name == profile.DefaultName {
		ctx.JSON(http.StatusForbidden, NewErrorResponse(ErrBuiltinProfile))
		return
	}

	// definition errors carry the exact reason, so they land in the field
	// message rather than being collapsed into "invalid params"
	if err := def.Validate(); err != nil {
		errField := ErrorField{"definition", err.Error()}
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, errField),
		)
		return
	}

	var description *string
	if def.Description != "" {
		description = &def.Description
	}

	// tag names are stored lowercased, matching the tokenizer
	tags := make([]db.CreateProfileTxTag, len(def.Tags))
	for i, tag := range def.Tags {
		tags[i] = db.CreateProfileTxTag{
			Name:        strings.ToLower(tag.Name),
			Template:    tag.Template,
			SelfClosing: tag.SelfClosing,
			NoCode:      tag.NoCode,
		}
	}

	result, err := s.store.CreateProfileTx(ctx, db.CreateProfileTxParams{
		CreateProfileParams: db.CreateProfileParams{
			Name:        def.Name,
			Description: util.StringToPgxText(description),
		},
		Tags: tags,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateProfile) {
			ctx.JSON(http.StatusConflict, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	authPayload := extractAuthPayloadFromCtx(ctx)
	log.Info().
		Str("user", authPayload.Username).
		Str("profile", def.Name).
		Msg("profile created")

	ctx.JSON(http.StatusOK, GetProfileResponse{
		Profile: result.Profile,
		Tags:    result.Tags,
	})
}
