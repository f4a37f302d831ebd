package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
)

// @Summary  List payment methods
// @Tags     payment-methods
// @Produce  json
// @Param    type query string false "type contains, case-insensitive"
// @Param    name query string false "name contains, case-insensitive"
// @Success  200 {array} paymentmethod.Method
// @Router   /payment-methods [get]
// @Router   /payment-methods/active [get]
// @Router   /payment-methods/search [get]
func listMethodsHandler(svc *paymentmethod.Service, activeOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := paymentmethod.Filter{Type: c.Query("type"), Name: c.Query("name")}
		if activeOnly {
			yes := true
			f.Active = &yes
		} else if v, ok, err := httpx.QueryBool(c, "active"); err != nil {
			httpx.WriteError(c, err)
			return
		} else if ok {
			f.Active = &v
		}
		out, err := svc.List(c.Request.Context(), f)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a payment method
// @Tags     payment-methods
// @Produce  json
// @Param    id path int true "method id"
// @Success  200 {object} paymentmethod.Method
// @Failure  404
// @Router   /payment-methods/{id} [get]
func getMethodHandler(svc *paymentmethod.Service) gin.HandlerFunc {
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

// @Summary  Create a payment method
// @Tags     payment-methods
// @Accept   json
// @Produce  json
// @Param    body body paymentmethod.Request true "method"
// @Success  201 {object} paymentmethod.Method
// @Failure  400 {object} httpx.ErrorBody
// @Router   /payment-methods [post]
func createMethodHandler(svc *paymentmethod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in paymentmethod.Request
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

// @Summary  Update a payment method
// @Tags     payment-methods
// @Accept   json
// @Produce  json
// @Param    id   path int                   true "method id"
// @Param    body body paymentmethod.Request true "method"
// @Success  200 {object} paymentmethod.Method
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /payment-methods/{id} [put]
func updateMethodHandler(svc *paymentmethod.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in paymentmethod.Request
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

// @Summary  Delete a payment method
// @Tags     payment-methods
// @Param    id path int true "method id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /payment-methods/{id} [delete]
func deleteMethodHandler(svc *paymentmethod.Service) gin.HandlerFunc {
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
