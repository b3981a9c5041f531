package api

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/job-discovery/internal/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net/http"
	"time"
)

const defaultIdleTimeout = 120 * time.Second

type Server struct {
	http *http.Server
}

func NewServer(cfg config.ServerConfig, handler *Handler) *Server {
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      NewRouter(cfg, handler),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
	}
}

// Run blocks until the server stops. A graceful shutdown is not reported as an error.
func (s *Server) Run() error {
	log.Infof("http server listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server failed")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
