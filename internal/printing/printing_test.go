package printing

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQR(t *testing.T) {
	b, err := QR(TableURL("http://localhost:8080", 4), 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestTableURL(t *testing.T) {
	assert.Equal(t, "https://pos.example/menu?table=12", TableURL("https://pos.example", 12))
}

func TestWriteReceipt(t *testing.T) {
	var buf bytes.Buffer
	err := WriteReceipt(&buf, Receipt{
		Number:  "RC-0001",
		PaidAt:  time.Date(2025, 5, 1, 20, 15, 0, 0, time.UTC),
		Status:  "COMPLETED",
		Method:  "Visa",
		OrderID: 12,
		Lines: []ReceiptLine{
			{Description: "Margherita", Quantity: 2, UnitPrice: decimal.RequireFromString("9.50"), Subtotal: decimal.RequireFromString("19.00")},
		},
		OrderTotal: decimal.RequireFromString("19.00"),
		Amount:     decimal.RequireFromString("19.00"),
		VerifyURL:  "http://localhost:8080/api/payments/receipt/RC-0001",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
