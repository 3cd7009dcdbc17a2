// Package api provides the HTTP surface of the host process: question
// submission, session inspection, clarification resume, result retrieval,
// and health. Heavy lifting happens in the worker pool; every handler here
// is a thin translation layer over the service layer.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/queue"
	"github.com/querra-ai/querra/pkg/services"
)

// Server is the API server. It owns no domain logic: handlers validate,
// delegate to services, and translate errors to HTTP responses.
type Server struct {
	cfg        *config.Config
	dbClient   *database.Client
	questions  *services.QuestionService
	sessions   *services.SessionService
	workerPool *queue.WorkerPool

	router     *gin.Engine
	httpServer *http.Server
}

// NewServer creates the API server with its route table.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	questions *services.QuestionService,
	sessions *services.SessionService,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		questions:  questions,
		sessions:   sessions,
		workerPool: workerPool,
	}

	gin.SetMode(gin.ReleaseMode)
	s.router = s.routes()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery(), securityHeaders())

	router.GET("/healthz", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/questions", s.submitQuestionHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)
		v1.GET("/sessions/:id/result", s.getResultHandler)
		v1.POST("/sessions/:id/clarification", s.clarificationHandler)
		v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	}

	return router
}

// Handler exposes the route table for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
