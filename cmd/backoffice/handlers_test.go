package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MikeMC777/restau-management/internal/cache"
	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/events"
	"github.com/MikeMC777/restau-management/internal/family"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/storage"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/testutil"
	"github.com/MikeMC777/restau-management/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
}

type env struct {
	db     *gorm.DB
	root   string
	svc    services
	router *gin.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.DB(t)
	root := t.TempDir()
	images, err := storage.NewLocal(root, 5<<20)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services{
		categories: category.NewService(category.NewGormRepo(db)),
		clients:    client.NewService(client.NewGormRepo(db)),
		families:   family.NewService(family.NewGormRepo(db), images),
		orders:     order.NewService(order.NewGormRepo(db), events.NewLog(log), nil),
		payments:   payment.NewService(payment.NewGormRepo(db)),
		methods:    paymentmethod.NewService(paymentmethod.NewGormRepo(db)),
		products:   product.NewService(product.NewGormRepo(db), images, cache.NewMemory(time.Minute)),
		tables:     table.NewService(table.NewGormRepo(db)),
		users:      user.NewService(user.NewGormRepo(db)),
	}
	r := newRouter(svc, routerConfig{
		log:        log,
		uploadRoot: root,
		baseURL:    "http://restau.test",
		origins:    []string{"http://localhost:5173"},
		ping:       func(context.Context) error { return nil },
	})
	return &env{db: db, root: root, svc: svc, router: r}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (e *env) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *env) doJSON(method, path string, v any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(v)
	return e.do(method, path, bytes.NewReader(b), "application/json")
}

func TestCreateOrder_CreatedThenTableConflict(t *testing.T) {
	e := newEnv(t)
	u := testutil.User(t, e.db, "waiter")
	tb := testutil.Table(t, e.db, 4, 4, true)
	p := testutil.Product(t, e.db, "Margherita", "9.50")

	body := map[string]any{
		"user_id":  u.ID,
		"table_id": tb.ID,
		"items":    []map[string]any{{"product_id": p.ID, "quantity": 2}},
	}
	w := e.doJSON(http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got order.Response
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Total.StringFixed(2) != "19.00" || len(got.Items) != 1 || got.Status != order.StatusOngoing {
		t.Fatalf("unexpected order: %+v", got)
	}

	w = e.doJSON(http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for occupied table, got %d body=%s", w.Code, w.Body.String())
	}
	var eb struct {
		Error     string `json:"error"`
		Timestamp string `json:"timestamp"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &eb)
	if !strings.Contains(eb.Error, "already occupied") || eb.Timestamp == "" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestCreateOrder_BadJSON(t *testing.T) {
	e := newEnv(t)
	w := e.do(http.MethodPost, "/api/orders", strings.NewReader("{"), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestOrderLookups_EmptyNotFound(t *testing.T) {
	e := newEnv(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/orders/999"},
		{http.MethodPost, "/api/orders/999/complete"},
		{http.MethodPost, "/api/orders/999/cancel"},
		{http.MethodGet, "/api/tables/999"},
		{http.MethodGet, "/api/payments/999"},
	} {
		w := e.do(tc.method, tc.path, nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: status=%d", tc.method, tc.path, w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("%s %s: expected empty body, got %q", tc.method, tc.path, w.Body.String())
		}
	}
}

func TestCompleteOrder_ReleasesTable(t *testing.T) {
	e := newEnv(t)
	u := testutil.User(t, e.db, "waiter")
	tb := testutil.Table(t, e.db, 2, 2, true)
	out, err := e.svc.orders.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: &tb.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	w := e.do(http.MethodPost, fmt.Sprintf("/api/orders/%d/complete", out.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got, err := e.svc.tables.Get(context.Background(), tb.ID)
	if err != nil || !got.Available {
		t.Fatalf("table not released: %+v err=%v", got, err)
	}

	w = e.do(http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", out.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("cancel after complete: status=%d body=%s", w.Code, w.Body.String())
	}
	var cancelled order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &cancelled)
	if cancelled.Status != order.StatusCancelled {
		t.Fatalf("status=%q, want %q", cancelled.Status, order.StatusCancelled)
	}
}

func TestUpdateQuantities(t *testing.T) {
	e := newEnv(t)
	u := testutil.User(t, e.db, "waiter")
	out, err := e.svc.orders.Create(context.Background(), order.CreateRequest{
		UserID: u.ID,
		Items: []order.ItemRequest{
			{Quantity: 1, UnitPrice: decPtr("10.00")},
			{Quantity: 1, UnitPrice: decPtr("4.00")},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	body := []order.QuantityUpdate{
		{ItemID: out.Items[0].ID, Quantity: 3},
		{ItemID: out.Items[1].ID, Quantity: 5},
	}
	w := e.doJSON(http.MethodPut, fmt.Sprintf("/api/orders/%d/quantities", out.ID), body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got order.Order
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Total.StringFixed(2) != "50.00" {
		t.Fatalf("total=%s, want 50.00", got.Total.StringFixed(2))
	}
}

func TestTableAvailability(t *testing.T) {
	e := newEnv(t)
	tb := testutil.Table(t, e.db, 9, 6, true)
	path := fmt.Sprintf("/api/tables/%d/availability", tb.ID)

	if w := e.do(http.MethodPatch, path, nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing available: expected 400, got %d", w.Code)
	}
	if w := e.do(http.MethodPatch, path+"?available=maybe", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad available: expected 400, got %d", w.Code)
	}
	if w := e.do(http.MethodPatch, path+"?available=false", nil, ""); w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := e.do(http.MethodPatch, "/api/tables/999/availability?available=true", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown table: expected 404, got %d", w.Code)
	}

	w := e.do(http.MethodGet, "/api/tables/available", nil, "")
	var list []table.Table
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 0 {
		t.Fatalf("expected no available tables, got %+v", list)
	}
}

func TestDeleteReferencedTable_Conflict(t *testing.T) {
	e := newEnv(t)
	u := testutil.User(t, e.db, "waiter")
	busy := testutil.Table(t, e.db, 1, 2, true)
	free := testutil.Table(t, e.db, 2, 2, true)
	if _, err := e.svc.orders.Create(context.Background(), order.CreateRequest{UserID: u.ID, TableID: &busy.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if w := e.do(http.MethodDelete, fmt.Sprintf("/api/tables/%d", busy.ID), nil, ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if w := e.do(http.MethodDelete, fmt.Sprintf("/api/tables/%d", free.ID), nil, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestTableQRCode(t *testing.T) {
	e := newEnv(t)
	tb := testutil.Table(t, e.db, 12, 4, true)

	w := e.do(http.MethodGet, fmt.Sprintf("/api/tables/%d/qrcode?size=128", tb.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content-type=%q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatal("body is not a PNG")
	}
	if w := e.do(http.MethodGet, fmt.Sprintf("/api/tables/%d/qrcode?size=10", tb.ID), nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for tiny size, got %d", w.Code)
	}
}

func TestPriceRange(t *testing.T) {
	e := newEnv(t)
	testutil.Product(t, e.db, "Water", "2.00")
	testutil.Product(t, e.db, "Soup", "6.50")
	testutil.Product(t, e.db, "Steak", "24.00")

	if w := e.do(http.MethodGet, "/api/products/price-range?min=2", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("missing max: expected 400, got %d", w.Code)
	}
	if w := e.do(http.MethodGet, "/api/products/price-range?min=abc&max=3", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad min: expected 400, got %d", w.Code)
	}
	w := e.do(http.MethodGet, "/api/products/price-range?min=2.00&max=6.50", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []product.Product
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2 (bounds inclusive)", len(got))
	}
}

func TestFamilyMultipart_CreateGetDelete(t *testing.T) {
	e := newEnv(t)
	cat := testutil.Category(t, e.db, "Mains")

	body, ct := testutil.Multipart(t, map[string]string{
		"name":        "Pizzas",
		"description": "Wood-fired",
		"categoryId":  fmt.Sprint(cat.ID),
	}, "pizza.png", "image/png", testutil.PNG(t, 600, 400))
	w := e.do(http.MethodPost, "/api/product-families", body, ct)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var created family.Family
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.ID == "" || created.ImageURL == "" {
		t.Fatalf("unexpected family: %+v", created)
	}

	w = e.do(http.MethodGet, "/api/product-families/"+created.ID, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got family.Family
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Name != "Pizzas" || got.Description != "Wood-fired" || got.ImageURL != created.ImageURL {
		t.Fatalf("get mismatch: %+v", got)
	}

	w = e.do(http.MethodGet, created.ImageURL, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("static image: status=%d", w.Code)
	}

	file := filepath.Join(e.root, filepath.FromSlash(strings.TrimPrefix(created.ImageURL, "/")))
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("image not stored: %v", err)
	}
	if w := e.do(http.MethodDelete, "/api/product-families/"+created.ID, nil, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status=%d body=%s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(file); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("image still on disk: %v", err)
	}
}

func TestProductMultipart_RejectsNonImage(t *testing.T) {
	e := newEnv(t)
	body, ct := testutil.Multipart(t, map[string]string{"name": "Menu", "price": "1.00"},
		"menu.pdf", "application/pdf", []byte("%PDF-1.4"))
	w := e.do(http.MethodPost, "/api/products", body, ct)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCatalogETag(t *testing.T) {
	e := newEnv(t)
	testutil.Category(t, e.db, "Drinks")

	w := e.do(http.MethodGet, "/api/categories", nil, "")
	tag := w.Header().Get("ETag")
	if w.Code != http.StatusOK || tag == "" {
		t.Fatalf("status=%d etag=%q", w.Code, tag)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("If-None-Match", tag)
	w = httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if w.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", w.Code)
	}
}

func TestPaymentReceiptPDF(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := testutil.User(t, e.db, "cashier")
	p := testutil.Product(t, e.db, "Lasagna", "12.00")
	m := testutil.Method(t, e.db, "CARD", "Visa")
	o, err := e.svc.orders.Create(ctx, order.CreateRequest{
		UserID: u.ID,
		Items:  []order.ItemRequest{{ProductID: &p.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("order: %v", err)
	}

	w := e.doJSON(http.MethodPost, "/api/payments", map[string]any{
		"order_id":          o.ID,
		"payment_method_id": m.ID,
		"status":            "COMPLETED",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var pay payment.Payment
	_ = json.Unmarshal(w.Body.Bytes(), &pay)
	if pay.Amount.StringFixed(2) != "24.00" || pay.ReceiptNumber == nil {
		t.Fatalf("unexpected payment: %+v", pay)
	}

	w = e.do(http.MethodGet, fmt.Sprintf("/api/payments/%d/receipt", pay.ID), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content-type=%q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("body is not a PDF")
	}

	w = e.do(http.MethodGet, "/api/payments/receipt-number/"+*pay.ReceiptNumber, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("lookup by receipt: status=%d", w.Code)
	}

	w = e.doJSON(http.MethodPost, "/api/payments", map[string]any{"order_id": o.ID, "payment_method_id": m.ID})
	if w.Code != http.StatusConflict {
		t.Fatalf("second payment for the order: expected 409, got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)
	if w := e.do(http.MethodGet, "/healthz", nil, ""); w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
