// Package printing renders table QR codes and payment receipts.
package printing

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// QR encodes content as a PNG of size×size pixels.
func QR(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// TableURL is what a table's QR code points at.
func TableURL(baseURL string, tableNumber int) string {
	return fmt.Sprintf("%s/menu?table=%d", baseURL, tableNumber)
}

type ReceiptLine struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type Receipt struct {
	Number      string
	PaidAt      time.Time
	Status      string
	Method      string
	OrderID     uint
	Lines       []ReceiptLine
	OrderTotal  decimal.Decimal
	Amount      decimal.Decimal
	VerifyURL   string // optional; printed as a QR code
	Transaction string
}

// WriteReceipt renders r as a single A4 page PDF.
func WriteReceipt(w io.Writer, r Receipt) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt "+r.Number, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Payment receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	for _, kv := range [][2]string{
		{"Receipt", r.Number},
		{"Order", fmt.Sprintf("#%d", r.OrderID)},
		{"Date", r.PaidAt.Format("2006-01-02 15:04")},
		{"Method", r.Method},
		{"Status", r.Status},
		{"Transaction", r.Transaction},
	} {
		if kv[1] == "" {
			continue
		}
		pdf.CellFormat(35, 7, kv[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, kv[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, l := range r.Lines {
		pdf.CellFormat(95, 7, l.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprint(l.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, l.UnitPrice.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, l.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 8, "Order total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, r.OrderTotal.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.CellFormat(150, 8, "Paid", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, r.Amount.StringFixed(2), "", 1, "R", false, 0, "")

	if r.VerifyURL != "" {
		png, err := QR(r.VerifyURL, 128)
		if err != nil {
			return err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("verify", opts, bytes.NewReader(png))
		pdf.ImageOptions("verify", 160, 20, 35, 35, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return nil
}
