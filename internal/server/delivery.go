package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderkyat/orderkyat/constants"
)

type deliveryTypeResponse struct {
	Type         string `json:"type"`
	SuggestedFee int    `json:"suggested_fee"`
	Free         bool   `json:"free"`
}

// handleDeliveryTypes lists the delivery methods the editing UI offers, with
// the fee to prefill for each. The fee is a suggestion; the draft keeps
// whatever the user enters (free methods excepted).
func (s *Server) handleDeliveryTypes(c *gin.Context) {
	names := constants.DeliveryTypes()
	out := make([]deliveryTypeResponse, 0, len(names))
	for _, name := range names {
		dt := constants.DeliveryType(name)
		out = append(out, deliveryTypeResponse{
			Type:         name,
			SuggestedFee: constants.SuggestedFee(dt),
			Free:         constants.IsFree(dt),
		})
	}
	c.JSON(http.StatusOK, out)
}
