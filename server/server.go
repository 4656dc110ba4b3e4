// Package server exposes the label pipeline over HTTP. Handlers accept a
// decoded raster upload plus query parameters and return prepared PNG
// buffers; printing goes through the configured Printer backend.
package server

import (
	"image"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"

	"github.com/stickerfactory/labelpress/printer"
)

// Config wires the server's collaborators. Printer and Capture are
// optional; the corresponding endpoints answer 503 when absent.
type Config struct {
	Media   printer.Media
	DPI     int
	Printer printer.Printer
	Font    *truetype.Font
	Capture func() (image.Image, error)
}

// Server routes pipeline operations over HTTP.
type Server struct {
	cfg    Config
	engine *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg Config) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{cfg: cfg, engine: engine}

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	api.POST("/prepare", s.handlePrepare)
	api.POST("/threshold", s.handleThreshold)
	api.POST("/levels", s.handleLevels)
	api.POST("/border", s.handleBorder)
	api.POST("/tiles", s.handleTiles)
	api.POST("/tiles/preview", s.handleTilePreview)
	api.POST("/text", s.handleText)
	api.GET("/qr", s.handleQR)
	api.POST("/print", s.handlePrint)
	api.GET("/webcam", s.handleWebcam)

	return s
}

// Handler returns the server as an http.Handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	log.Printf("server: listening on %s (media %s, %d dots)",
		addr, s.cfg.Media.Name, s.cfg.Media.Dots)
	return s.engine.Run(addr)
}
