package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/orderkyat/orderkyat/internal/repository"
)

// Service is a tiny façade over the draft repository that produces XLSX
// bytes for order-history exports.
type Service struct {
	drafts repository.DraftRepository
	logger *slog.Logger
}

func NewService(drafts repository.DraftRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{drafts: drafts, logger: logger}
}

// InvoiceHistoryXLSX returns an XLSX workbook (as bytes) listing every
// finalized invoice, one row per invoice.
func (s *Service) InvoiceHistoryXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	invoices, err := s.drafts.ListFinalized(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx sheet setup: %w", err)
	}

	headers := []string{
		"Invoice Number",
		"Date",
		"Customer",
		"Phone",
		"Address",
		"Items",
		"Item Total (Ks)",
		"Delivery Type",
		"Delivery Fee (Ks)",
		"Grand Total (Ks)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		itemSummary := ""
		for i, it := range inv.Data.Items {
			if i > 0 {
				itemSummary += "; "
			}
			itemSummary += fmt.Sprintf("%dx %s", it.Quantity, it.Name)
		}

		write(1, inv.InvoiceNumber)
		write(2, inv.UpdatedAt.Format("2006-01-02"))
		write(3, inv.Data.CustomerName)
		write(4, inv.Data.Phone)
		write(5, inv.Data.Address)
		write(6, truncate(itemSummary, 140))
		write(7, inv.Data.TotalPrice)
		write(8, string(inv.Data.DeliveryType))
		write(9, inv.Data.DeliveryFee)
		write(10, inv.Data.GrandTotal())

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // number
	_ = f.SetColWidth(sheet, "B", "B", 12) // date
	_ = f.SetColWidth(sheet, "C", "C", 22) // customer
	_ = f.SetColWidth(sheet, "D", "E", 18) // phone, address
	_ = f.SetColWidth(sheet, "F", "F", 48) // items
	_ = f.SetColWidth(sheet, "G", "J", 16) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// truncate cuts on rune boundaries; item names may carry Myanmar script.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
