// Package receipt renders order receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// pdfRenderer implements service.ReceiptRenderer using fpdf. The layout is a
// single A4 page: store header, order metadata, customer and shipping blocks,
// an items table and the grand total.
type pdfRenderer struct {
	storeName    string
	storeTagline string
}

// NewPDFRenderer is the constructor for pdfRenderer.
func NewPDFRenderer(cfg *config.Config) service.ReceiptRenderer {
	name := "Storefront"
	tagline := ""
	if cfg != nil && cfg.Receipt != nil {
		if cfg.Receipt.StoreName != "" {
			name = cfg.Receipt.StoreName
		}
		tagline = cfg.Receipt.StoreTagline
	}

	return &pdfRenderer{storeName: name, storeTagline: tagline}
}

// Render produces the PDF bytes for a receipt.
func (r *pdfRenderer) Render(data *service.ReceiptData) ([]byte, error) {
	if data == nil || data.Order == nil {
		return nil, errors.New("receipt data is incomplete")
	}

	order := data.Order

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Store header.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, r.storeName, "", 1, "C", false, 0, "")
	if r.storeTagline != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 5, r.storeTagline, "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(15, pdf.GetY()+1, 195, pdf.GetY()+1)
	pdf.Ln(5)

	// Order metadata.
	pdf.SetFont("Helvetica", "", 10)
	metaRow(pdf, "Order ID", order.ID.String())
	metaRow(pdf, "Date", order.CreatedAt.Format("2006-01-02 15:04"))
	metaRow(pdf, "Status", order.Status.String())
	metaRow(pdf, "Payment", strings.ReplaceAll(order.PaymentMethod.String(), "_", " "))
	pdf.Ln(4)

	// Customer block.
	if data.User != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Customer", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, data.User.Email, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	// Shipping block. Absent when the customer has no default address.
	if addr := data.Address; addr != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Ship To", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("%s %s", addr.FirstName, addr.LastName), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, addr.Address, "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, fmt.Sprintf("%s, %s %s", addr.City, addr.PostalCode, addr.Country), "", 1, "L", false, 0, "")
		if addr.Phone != "" {
			pdf.CellFormat(0, 5, addr.Phone, "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	// Items table.
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(75, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 7, "SKU", "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		name := "Unknown item"
		sku := ""
		if item.Variant != nil {
			sku = item.Variant.SKU
			if item.Variant.Product != nil {
				name = item.Variant.Product.Name
			}
		}

		pdf.CellFormat(75, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, sku, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, item.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, item.LineTotal().StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// Grand total.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, order.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	// Footer.
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Thank you for your purchase!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render receipt pdf")
	}

	return buf.Bytes(), nil
}

func metaRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 5, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, value, "", 1, "L", false, 0, "")
}
