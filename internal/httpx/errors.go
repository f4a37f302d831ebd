package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restau-management/internal/apperr"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error     string `json:"error"     example:"table 4 is already occupied"`
	Timestamp string `json:"timestamp" example:"2025-08-01T12:00:00Z"`
}

// WriteError maps err onto its HTTP status. Internal errors are logged and
// answered with a generic message.
func WriteError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "rid", RID(c), "path", c.Request.URL.Path, "err", err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: msg, Timestamp: time.Now().UTC().Format(time.RFC3339)})
}

// WriteLookupError answers a missing primary resource with an empty 404.
func WriteLookupError(c *gin.Context, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	WriteError(c, err)
}

// BindError wraps a gin binding failure as a validation error.
func BindError(err error) error {
	return apperr.Validation("invalid request body: %v", err)
}

func ParamUint(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperr.Validation("invalid %s %q", name, c.Param(name))
	}
	return uint(v), nil
}

func ParamInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperr.Validation("invalid %s %q", name, c.Param(name))
	}
	return v, nil
}

// QueryBool parses an optional boolean query value; ok is false when absent.
func QueryBool(c *gin.Context, name string) (v, ok bool, err error) {
	raw, present := c.GetQuery(name)
	if !present {
		return false, false, nil
	}
	v, err = strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, false, apperr.Validation("invalid %s %q, expected true or false", name, raw)
	}
	return v, true, nil
}

// QueryDecimal parses a required decimal query value.
func QueryDecimal(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return decimal.Zero, apperr.Validation("%s is required", name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperr.Validation("invalid %s %q", name, raw)
	}
	return d, nil
}

// RequiredQuery returns a non-empty query value or a validation error.
func RequiredQuery(c *gin.Context, name string) (string, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return "", apperr.Validation("%s is required", name)
	}
	return v, nil
}
