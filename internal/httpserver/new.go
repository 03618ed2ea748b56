package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "multilingual-chat/internal/chat/delivery/http"
	"multilingual-chat/internal/middleware"
	pkgLog "multilingual-chat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	indexFile   string

	mw          middleware.Middleware
	chatHandler chatHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// IndexFile is the static landing page; empty skips the route.
	IndexFile string

	Middleware  middleware.Middleware
	ChatHandler chatHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		indexFile:   cfg.IndexFile,
		mw:          cfg.Middleware,
		chatHandler: cfg.ChatHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
