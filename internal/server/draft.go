package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/entity"
)

type extractRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	draft, err := s.invoices.ExtractDraft(c.Request.Context(), req.Text)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) handleGetDraft(c *gin.Context) {
	draft, err := s.invoices.Draft(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) handleUpdateDraft(c *gin.Context) {
	var data entity.ExtractionResult
	if err := c.ShouldBindJSON(&data); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	draft, err := s.invoices.UpdateDraft(c.Request.Context(), data)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) handleDeleteDraft(c *gin.Context) {
	if err := s.invoices.DiscardDraft(c.Request.Context()); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
