package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/yldio/xbbcode/db/sqlc"
	"github.com/yldio/xbbcode/tmpstore"
	"github.com/yldio/xbbcode/token"
	"github.com/yldio/xbbcode/util"
)

const (
	// api routes
	RenderURL      = "/render"
	ProfilesURL    = "/profiles"
	ProfileURL     = "/profiles/:profile"
	ProfileTagsURL = "/profiles/:profile/tags"
	ProfileTagURL  = "/profiles/:profile/tags/:tag"
)

var (
	// api errors
	ErrInvalidParams      = errors.New("invalid params")
	ErrInvalidProfileName = errors.New("invalid profile name")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrBuiltinProfile     = errors.New("the built-in profile cannot be changed")
)

type Service struct {
	config     util.Config
	store      db.Store
	tokenMaker token.Maker
	server     *http.Server
	router     *gin.Engine
	redisStore tmpstore.Store
	renderers  *rendererRegistry
}

// Returns new service instance with provided config and store.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	rs tmpstore.Store,
) (*Service, error) {

	service := &Service{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		redisStore: rs,
		renderers:  newRendererRegistry(),
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
