// Package server exposes the HTTP JSON API consumed by the browser UI.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/export"
	"github.com/orderkyat/orderkyat/internal/invoice"
	"github.com/orderkyat/orderkyat/internal/repository"
)

type Server struct {
	invoices *invoice.Service
	profiles repository.StoreProfileRepository
	exporter *export.Service
	logger   *slog.Logger
}

func NewServer(
	invoices *invoice.Service,
	profiles repository.StoreProfileRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		invoices: invoices,
		profiles: profiles,
		exporter: exporter,
		logger:   logger,
	}
}

// Router wires all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		ctx := common.WithRequestID(c.Request.Context(), uuid.NewString())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/extract", s.handleExtract)

		v1.GET("/draft", s.handleGetDraft)
		v1.PUT("/draft", s.handleUpdateDraft)
		v1.DELETE("/draft", s.handleDeleteDraft)

		v1.GET("/profile", s.handleGetProfile)
		v1.PUT("/profile", s.handleUpdateProfile)

		v1.GET("/delivery-types", s.handleDeliveryTypes)

		v1.POST("/invoices/download", s.handleDownload)
		v1.GET("/export", s.handleExport)
	}
	return r
}

func (s *Server) respondError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= 500 {
		s.logger.Error("request failed",
			"path", c.FullPath(),
			"request_id", common.RequestIDFromContext(c.Request.Context()),
			"error", err,
		)
		// do not leak internals
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
