package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/order"
)

// listOrdersHandler serves the order listings; filter derives the
// predicates from the request.
//
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Order
// @Failure  400 {object} httpx.ErrorBody
// @Router   /orders [get]
// @Router   /orders/status/{status} [get]
// @Router   /orders/user/{userId} [get]
func listOrdersHandler(svc *order.Service, filter func(*gin.Context) (order.Filter, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := filter(c)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.List(c.Request.Context(), f)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func allOrders(*gin.Context) (order.Filter, error) { return order.Filter{}, nil }

func ordersByStatus(c *gin.Context) (order.Filter, error) {
	return order.Filter{Status: strings.ToUpper(strings.TrimSpace(c.Param("status")))}, nil
}

func ordersByUser(c *gin.Context) (order.Filter, error) {
	id, err := httpx.ParamUint(c, "userId")
	return order.Filter{UserID: id}, err
}

// @Summary  Orders created today
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Order
// @Router   /orders/today [get]
func todayOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Today(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Orders of a client
// @Tags     orders
// @Produce  json
// @Param    clientId path  int    true  "client id"
// @Param    from     query string false "ISO date, inclusive"
// @Param    to       query string false "ISO date, inclusive"
// @Success  200 {array} order.Order
// @Failure  400 {object} httpx.ErrorBody
// @Router   /orders/client/{clientId} [get]
func clientOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "clientId")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.ByClient(c.Request.Context(), id, c.Query("from"), c.Query("to"))
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get an order with its items
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} order.Response
// @Failure  404
// @Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Open an order
// @Description Claims the table atomically, prices every line and stores the total, all in one transaction.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateRequest true "order"
// @Success  201 {object} order.Response
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateRequest
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

// @Summary  Replace an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path int                  true "order id"
// @Param    body body order.ReplaceRequest true "order"
// @Success  200 {object} order.Response
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /orders/{id} [put]
func replaceOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in order.ReplaceRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.Replace(c.Request.Context(), id, in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Update item quantities
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path int                    true "order id"
// @Param    body body []order.QuantityUpdate true "new quantities"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /orders/{id}/quantities [put]
func updateQuantitiesHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in []order.QuantityUpdate
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.UpdateQuantities(c.Request.Context(), id, in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// finishOrderHandler completes or cancels an order.
//
// @Summary  Complete or cancel an order
// @Description Sets the status from any current status and frees the table the order occupies.
// @Tags     orders
// @Produce  json
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  404
// @Router   /orders/{id}/complete [post]
// @Router   /orders/{id}/cancel [post]
func finishOrderHandler(finish func(*gin.Context, uint) (*order.Order, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := finish(c, id)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func completeOrder(svc *order.Service) func(*gin.Context, uint) (*order.Order, error) {
	return func(c *gin.Context, id uint) (*order.Order, error) { return svc.Complete(c.Request.Context(), id) }
}

func cancelOrder(svc *order.Service) func(*gin.Context, uint) (*order.Order, error) {
	return func(c *gin.Context, id uint) (*order.Order, error) { return svc.Cancel(c.Request.Context(), id) }
}

// @Summary  Assign a client and settle the order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id   path int                       true "order id"
// @Param    body body order.AssignClientRequest true "client"
// @Success  200 {object} order.Response
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /orders/{id}/assign-client [put]
func assignClientHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in order.AssignClientRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		if in.ClientID == 0 {
			httpx.WriteError(c, apperr.Validation("client_id is required"))
			return
		}
		out, err := svc.AssignClient(c.Request.Context(), id, in.ClientID)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete an unpaid order
// @Tags     orders
// @Param    id path int true "order id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /orders/{id} [delete]
func deleteOrderHandler(svc *order.Service) gin.HandlerFunc {
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
