package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KostinaAnya/Exel-Analyzer/internal/config"
	"github.com/KostinaAnya/Exel-Analyzer/internal/server/handlers"
)

// Server is the HTTP front of the report tool.
type Server struct {
	router *gin.Engine
}

// NewServer wires the router. uploadDir must already exist.
func NewServer(cfg *config.AppConfig, uploadDir string, log *zap.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.Upload.MaxFileBytes()

	h := handlers.NewHandlers(cfg, uploadDir, log)

	router.GET("/", h.Index)
	router.POST("/report", h.GenerateReport)
	router.GET("/healthz", h.Health)

	return &Server{router: router}
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts listening on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
