// Package render produces the downloadable invoice PDF. The layout mirrors
// the editing preview: header, FROM / BILL TO blocks, item table, delivery
// line and grand total. Every line item and the final total must appear
// exactly as edited; styling beyond that is cosmetic.
package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/internal/entity"
)

const brandName = "OrderKyat"

// Defaults fill the FROM block when the store profile leaves fields blank.
type Defaults struct {
	StoreName    string
	StorePhone   string
	StoreAddress string
}

type Renderer struct {
	defaults Defaults
	logger   *slog.Logger
}

func NewRenderer(defaults Defaults, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if defaults.StoreName == "" {
		defaults.StoreName = brandName
	}
	return &Renderer{defaults: defaults, logger: logger}
}

// Invoice renders an A4 invoice document for the given (post-edit) data.
func (r *Renderer) Invoice(data entity.ExtractionResult, store entity.StoreProfile, invoiceNumber string, now time.Time) ([]byte, error) {
	start := time.Now()

	if invoiceNumber == "" {
		invoiceNumber = fmt.Sprintf("INV-%d-0000", now.Year())
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 16, 14)
	pdf.AddPage()

	// Header: title + brand left, number + date right.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(120, 10, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 10, invoiceNumber, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(120, 6, brandName, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, now.Format("January 2, 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	// FROM / BILL TO blocks side by side.
	r.infoBlock(pdf, 0, "FROM",
		orDefault(store.Name, r.defaults.StoreName),
		orDefault(store.Phone, r.defaults.StorePhone),
		orDefault(store.Address, r.defaults.StoreAddress),
	)
	r.infoBlock(pdf, 95, "BILL TO",
		data.CustomerName,
		data.Phone,
		data.Address,
	)
	pdf.Ln(26)

	r.itemTable(pdf, data.Items)

	if data.DeliveryType != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 116, 139)
		pdf.CellFormat(30, 6, "Delivery Method:", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(0, 6, string(data.DeliveryType), "", 1, "L", false, 0, "")
	}

	r.summary(pdf, data)

	// Footer.
	pdf.SetY(-36)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 6, "Thank you for your business!", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Generated by OrderKyat - Myanmar's Smart Invoice Generator", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	r.logger.Info("render.pdf.ok",
		"invoice_number", invoiceNumber,
		"items", len(data.Items),
		"grand_total", data.GrandTotal(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (r *Renderer) infoBlock(pdf *fpdf.Fpdf, xOffset float64, label, name, phone, address string) {
	left, _, _, _ := pdf.GetMargins()
	x := left + xOffset
	y := pdf.GetY()

	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(85, 5, label, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(15, 23, 42)
	pdf.CellFormat(85, 6, name, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(71, 85, 105)
	pdf.CellFormat(85, 5, phone, "", 2, "L", false, 0, "")
	if address != "" {
		pdf.CellFormat(85, 5, address, "", 2, "L", false, 0, "")
	}
	pdf.SetXY(x, y)
}

func (r *Renderer) itemTable(pdf *fpdf.Fpdf, items []entity.InvoiceItem) {
	const (
		wName  = 82.0
		wQty   = 20.0
		wPrice = 40.0
		wTotal = 40.0
	)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(241, 245, 249)
	pdf.SetTextColor(51, 65, 85)
	pdf.CellFormat(wName, 8, "ITEM DESCRIPTION", "B", 0, "L", true, 0, "")
	pdf.CellFormat(wQty, 8, "QTY", "B", 0, "C", true, 0, "")
	pdf.CellFormat(wPrice, 8, "PRICE", "B", 0, "R", true, 0, "")
	pdf.CellFormat(wTotal, 8, "TOTAL", "B", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(15, 23, 42)
	for _, it := range items {
		pdf.CellFormat(wName, 8, it.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(wQty, 8, fmt.Sprintf("%d", it.Quantity), "B", 0, "C", false, 0, "")
		pdf.CellFormat(wPrice, 8, FormatKyat(it.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(wTotal, 8, FormatKyat(it.Subtotal()), "B", 1, "R", false, 0, "")
	}
}

func (r *Renderer) summary(pdf *fpdf.Fpdf, data entity.ExtractionResult) {
	const wLabel, wValue = 45.0, 45.0
	indent := 182.0 - wLabel - wValue

	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(indent, 7, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(wLabel, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(wValue, 7, value, "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetTextColor(51, 65, 85)
	line("Subtotal", FormatKyat(data.TotalPrice), false)

	if data.DeliveryFee > 0 {
		line("Delivery Fee", FormatKyat(data.DeliveryFee), false)
	} else if constants.IsFree(data.DeliveryType) {
		line("Delivery Fee", "FREE", false)
	}

	pdf.SetTextColor(15, 23, 42)
	line("GRAND TOTAL", FormatKyat(data.GrandTotal()), true)
}

// FormatKyat renders an amount with thousands separators and the kyat
// suffix, e.g. 1500000 -> "1,500,000 Ks".
func FormatKyat(n int) string {
	return groupThousands(n) + " Ks"
}

func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
