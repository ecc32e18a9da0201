package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yldio/xbbcode/profile"
	"github.com/yldio/xbbcode/tmpstore"
)

type RenderTextRequest struct {
	Text string `json:"text" binding:"required,max=65536"`

	// Profile is the name of the tag profile to render under.
	// Empty means the built-in one.
	Profile string `json:"profile"`
}

type RenderTextResponse struct {
	HTML    string `json:"html"`
	Profile string `json:"profile"`
	Cached  bool   `json:"cached"`
}

func (s *Service) renderText(ctx *gin.Context) {
	var req RenderTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	name := req.Profile
	if name == "" {
		name = profile.DefaultName
	}

	if !profile.ValidName(name) {
		errField := ErrorField{"profile", fmt.Sprintf("profile name [%s] is invalid", name)}
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidProfileName, errField),
		)
		return
	}

	renderer, err := s.rendererFor(ctx, name)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	// a cache failure must never fail the request, rendering is cheap enough
	html, err := s.redisStore.GetRenderedText(ctx, name, req.Text)
	if err == nil {
		ctx.JSON(http.StatusOK, RenderTextResponse{
			HTML:    html,
			Profile: name,
			Cached:  true,
		})
		return
	}

	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		log.Warn().Err(err).Msg("render cache lookup failed")
	}

	html = renderer.Render(req.Text)

	if err := s.redisStore.SaveRenderedText(ctx, name, req.Text, html, s.config.RenderCacheTTL); err != nil {
		log.Warn().Err(err).Msg("render cache save failed")
	}

	ctx.JSON(http.StatusOK, RenderTextResponse{
		HTML:    html,
		Profile: name,
	})
}
