package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// rendering and read-only profile access are public
	router.POST(RenderURL, service.renderText)
	router.GET(ProfilesURL, service.listProfiles)

	publicProfileGroup := router.Group("/").Use(service.profileNameMiddleware())
	publicProfileGroup.GET(ProfileURL, service.getProfile)

	// profile mutations need a valid access token
	authGroup := router.Group("/").Use(authMiddleware(service.tokenMaker))
	authGroup.POST(ProfilesURL, service.createProfile)

	authProfileGroup := authGroup.Use(service.profileNameMiddleware())
	authProfileGroup.DELETE(ProfileURL, service.deleteProfile)
	authProfileGroup.POST(ProfileTagsURL, service.createTagRule)
	authProfileGroup.DELETE(ProfileTagURL, service.deleteTagRule)

	server.Handler = router
	service.router = router
}
