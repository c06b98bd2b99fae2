package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleDownload(c *gin.Context) {
	name, pdfBytes, err := s.invoices.Finalize(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (s *Server) handleExport(c *gin.Context) {
	xlsxBytes, err := s.exporter.InvoiceHistoryXLSX(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orderkyat-invoices.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsxBytes)
}
