package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/printing"
	"github.com/MikeMC777/restau-management/internal/product"
)

// @Summary  List payments
// @Tags     payments
// @Produce  json
// @Param    status query string false "PENDING, COMPLETED, FAILED or REFUNDED"
// @Success  200 {array} payment.Payment
// @Router   /payments [get]
// @Router   /payments/status/{status} [get]
func listPaymentsHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.Param("status")
		if status == "" {
			status = c.Query("status")
		}
		out, err := svc.List(c.Request.Context(), payment.Filter{Status: status})
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// lookupPaymentHandler answers the single-payment lookups; key resolves
// the path parameter into a payment.
//
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Success  200 {object} payment.Payment
// @Failure  404
// @Router   /payments/{id} [get]
// @Router   /payments/order/{orderId} [get]
// @Router   /payments/transaction/{transactionId} [get]
// @Router   /payments/receipt-number/{number} [get]
func lookupPaymentHandler(key func(*gin.Context) (*payment.Payment, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := key(c)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func paymentByID(svc *payment.Service) func(*gin.Context) (*payment.Payment, error) {
	return func(c *gin.Context) (*payment.Payment, error) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			return nil, err
		}
		return svc.Get(c.Request.Context(), id)
	}
}

func paymentByOrder(svc *payment.Service) func(*gin.Context) (*payment.Payment, error) {
	return func(c *gin.Context) (*payment.Payment, error) {
		id, err := httpx.ParamUint(c, "orderId")
		if err != nil {
			return nil, err
		}
		return svc.ByOrder(c.Request.Context(), id)
	}
}

func paymentByTransaction(svc *payment.Service) func(*gin.Context) (*payment.Payment, error) {
	return func(c *gin.Context) (*payment.Payment, error) {
		return svc.ByTransaction(c.Request.Context(), c.Param("transactionId"))
	}
}

func paymentByReceipt(svc *payment.Service) func(*gin.Context) (*payment.Payment, error) {
	return func(c *gin.Context) (*payment.Payment, error) {
		return svc.ByReceipt(c.Request.Context(), c.Param("number"))
	}
}

// @Summary  Revenue of today's completed payments
// @Tags     payments
// @Produce  json
// @Success  200 {object} payment.Revenue
// @Router   /payments/today-revenue [get]
func todayRevenueHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.TodayRevenue(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Payments in a date range
// @Tags     payments
// @Produce  json
// @Param    start query string true "ISO date or date-time"
// @Param    end   query string true "ISO date or date-time, inclusive"
// @Success  200 {array} payment.Payment
// @Failure  400 {object} httpx.ErrorBody
// @Router   /payments/date-range [get]
func paymentDateRangeHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.DateRange(c.Request.Context(), c.Query("start"), c.Query("end"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Record a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body body payment.Request true "payment"
// @Success  201 {object} payment.Payment
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /payments [post]
func createPaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in payment.Request
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id   path int             true "payment id"
// @Param    body body payment.Request true "payment"
// @Success  200 {object} payment.Payment
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /payments/{id} [put]
func updatePaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in payment.Request
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a payment
// @Tags     payments
// @Param    id path int true "payment id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Router   /payments/{id} [delete]
func deletePaymentHandler(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type receiptSources struct {
	payments *payment.Service
	orders   *order.Service
	products *product.Service
	methods  *paymentmethod.Service
	baseURL  string
}

func (r receiptSources) build(c *gin.Context, id uint) (*printing.Receipt, error) {
	ctx := c.Request.Context()
	p, err := r.payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	o, err := r.orders.Get(ctx, p.OrderID)
	if err != nil {
		return nil, err
	}
	rc := &printing.Receipt{
		PaidAt:     p.Timestamp,
		Status:     p.Status,
		Method:     fmt.Sprintf("#%d", p.MethodID),
		OrderID:    o.ID,
		OrderTotal: o.Total,
		Amount:     p.Amount,
	}
	if p.ReceiptNumber != nil {
		rc.Number = *p.ReceiptNumber
		rc.VerifyURL = r.baseURL + "/api/payments/receipt-number/" + rc.Number
	}
	if p.TransactionID != nil {
		rc.Transaction = *p.TransactionID
	}
	if m, err := r.methods.Get(ctx, p.MethodID); err == nil {
		rc.Method = m.Name
	}
	for _, it := range o.Items {
		desc := it.Details
		if it.ProductID != nil {
			if prod, err := r.products.Get(ctx, *it.ProductID); err == nil {
				desc = prod.Name
			}
		}
		if desc == "" {
			desc = fmt.Sprintf("Item #%d", it.ID)
		}
		rc.Lines = append(rc.Lines, printing.ReceiptLine{
			Description: desc,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return rc, nil
}

// @Summary  Printable receipt of a payment
// @Tags     payments
// @Produce  application/pdf
// @Param    id path int true "payment id"
// @Success  200 {file} binary
// @Failure  404
// @Router   /payments/{id}/receipt [get]
func paymentReceiptHandler(src receiptSources) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		rc, err := src.build(c, id)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		var buf bytes.Buffer
		if err := printing.WriteReceipt(&buf, *rc); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="receipt-%d.pdf"`, id))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}
