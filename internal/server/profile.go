package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderkyat/orderkyat/internal/common"
	"github.com/orderkyat/orderkyat/internal/entity"
)

type profileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *Server) handleGetProfile(c *gin.Context) {
	p, err := s.profiles.Get(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, common.InvalidArgumentError("invalid request body"))
		return
	}

	v := common.NewValidator().
		Field("name", req.Name, common.MaxLength(120)).
		Field("phone", req.Phone, common.MaxLength(40)).
		Field("address", req.Address, common.MaxLength(200))
	if err := common.ValidateAndReturnError(v); err != nil {
		s.respondError(c, err)
		return
	}

	p, err := s.profiles.Upsert(c.Request.Context(), &entity.StoreProfile{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
