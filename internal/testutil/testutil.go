// Package testutil provides a migrated in-memory database and small seeders
// for repository and handler tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/database"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/user"
)

// DB returns a fresh, migrated SQLite database closed with the test.
func DB(t testing.TB) *gorm.DB {
	t.Helper()
	d, err := database.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	require.NoError(t, d.Migrate(context.Background()))
	return d.Gorm
}

// FileDB returns a migrated SQLite database on disk with a real connection
// pool, for tests whose goroutines must hit the database concurrently. Writers
// take the lock at BEGIN and wait for it instead of failing with SQLITE_BUSY.
func FileDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "restau.db") + "?_busy_timeout=10000&_txlock=immediate&_journal_mode=WAL"
	d, err := database.OpenSQLite(dsn, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	require.NoError(t, d.Migrate(context.Background()))
	return d.Gorm
}

func User(t testing.TB, db *gorm.DB, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Email: username + "@restau.local", PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Client(t testing.TB, db *gorm.DB, first, last string) *client.Client {
	t.Helper()
	c := &client.Client{FirstName: first, LastName: last}
	require.NoError(t, db.Create(c).Error)
	return c
}

func Table(t testing.TB, db *gorm.DB, number, capacity int, available bool) *table.Table {
	t.Helper()
	tb := &table.Table{Number: number, Capacity: capacity, Available: available}
	require.NoError(t, db.Create(tb).Error)
	return tb
}

func Category(t testing.TB, db *gorm.DB, name string) *category.Category {
	t.Helper()
	c := &category.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func Product(t testing.TB, db *gorm.DB, name, price string) *product.Product {
	t.Helper()
	p := &product.Product{Name: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(p).Error)
	return p
}

func Method(t testing.TB, db *gorm.DB, typ, name string) *paymentmethod.Method {
	t.Helper()
	m := &paymentmethod.Method{Type: typ, Name: name, Active: true}
	require.NoError(t, db.Create(m).Error)
	return m
}

// PNG encodes a w×h image with a red top row.
func PNG(t testing.TB, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// Multipart writes fields plus one "image" file part and returns the body
// and its Content-Type.
func Multipart(t testing.TB, fields map[string]string, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

// Upload builds the *multipart.FileHeader a handler would receive for data.
func Upload(t testing.TB, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	body, ct := Multipart(t, nil, filename, contentType, data)
	_, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}
