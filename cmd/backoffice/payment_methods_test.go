package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
)

// stubMethods keeps methods in memory; failing makes every call error out.
type stubMethods struct {
	items      map[uint]*paymentmethod.Method
	lastFilter paymentmethod.Filter
	failing    bool
}

var errDown = errors.New("connection reset by peer")

func newStubMethods() *stubMethods {
	return &stubMethods{items: map[uint]*paymentmethod.Method{}}
}

func (s *stubMethods) Create(_ context.Context, m *paymentmethod.Method) error {
	if s.failing {
		return errDown
	}
	m.ID = uint(len(s.items) + 1)
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *stubMethods) GetByID(_ context.Context, id uint) (*paymentmethod.Method, error) {
	if s.failing {
		return nil, errDown
	}
	m, ok := s.items[id]
	if !ok {
		return nil, apperr.NotFound("payment method %d not found", id)
	}
	cp := *m
	return &cp, nil
}

func (s *stubMethods) List(_ context.Context, f paymentmethod.Filter) ([]paymentmethod.Method, error) {
	s.lastFilter = f
	if s.failing {
		return nil, errDown
	}
	out := []paymentmethod.Method{}
	for _, m := range s.items {
		if f.Active != nil && m.Active != *f.Active {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.Name)) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMethods) Update(_ context.Context, m *paymentmethod.Method) error {
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *stubMethods) Delete(_ context.Context, id uint) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubMethods) InUse(context.Context, uint) (bool, error) { return false, nil }

func methodsRouter(repo paymentmethod.Repository) *gin.Engine {
	svc := paymentmethod.NewService(repo)
	r := gin.New()
	r.GET("/payment-methods", listMethodsHandler(svc, false))
	r.GET("/payment-methods/active", listMethodsHandler(svc, true))
	r.GET("/payment-methods/search", listMethodsHandler(svc, false))
	r.GET("/payment-methods/:id", getMethodHandler(svc))
	r.POST("/payment-methods", createMethodHandler(svc))
	r.DELETE("/payment-methods/:id", deleteMethodHandler(svc))
	return r
}

func TestMethods_CreateAndActiveFilter(t *testing.T) {
	repo := newStubMethods()
	r := methodsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment-methods",
		strings.NewReader(`{"type":"CARD","name":"Visa","processing_fee":"1.755"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var m paymentmethod.Method
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if !m.Active || m.ProcessingFee.StringFixed(2) != "1.76" {
		t.Fatalf("unexpected method: %+v", m)
	}
	repo.items[2] = &paymentmethod.Method{ID: 2, Type: "CASH", Name: "Cash", Active: false}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-methods/active", nil))
	var list []paymentmethod.Method
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0].Name != "Visa" {
		t.Fatalf("active list=%+v", list)
	}
	if repo.lastFilter.Active == nil || !*repo.lastFilter.Active {
		t.Fatal("active endpoint must filter on active=true")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-methods/search?name=CAS", nil))
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 || list[0].Name != "Cash" {
		t.Fatalf("search list=%+v", list)
	}
}

func TestMethods_ValidationAndLookup(t *testing.T) {
	r := methodsRouter(newStubMethods())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payment-methods", strings.NewReader(`{"type":"CARD"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without name, got %d", w.Code)
	}

	for _, tc := range []struct {
		path string
		want int
	}{
		{"/payment-methods/7", http.StatusNotFound},
		{"/payment-methods/abc", http.StatusBadRequest},
		{"/payment-methods/0", http.StatusBadRequest},
		{"/payment-methods?active=perhaps", http.StatusBadRequest},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("%s: status=%d, want %d", tc.path, w.Code, tc.want)
		}
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/payment-methods/7", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete unknown: status=%d", w.Code)
	}
}

func TestMethods_InternalErrorIsHidden(t *testing.T) {
	repo := newStubMethods()
	repo.failing = true
	r := methodsRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payment-methods", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}
