package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/order"
)

// @Summary  List order items
// @Tags     order-items
// @Produce  json
// @Success  200 {array} order.Item
// @Router   /order-items [get]
// @Router   /order-items/order/{orderId} [get]
// @Router   /order-items/product/{productId} [get]
func listItemsHandler(svc *order.Service, filter func(*gin.Context) (order.ItemFilter, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := filter(c)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.ListItems(c.Request.Context(), f)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func allItems(*gin.Context) (order.ItemFilter, error) { return order.ItemFilter{}, nil }

func itemsByOrder(c *gin.Context) (order.ItemFilter, error) {
	id, err := httpx.ParamUint(c, "orderId")
	return order.ItemFilter{OrderID: id}, err
}

func itemsByProduct(c *gin.Context) (order.ItemFilter, error) {
	id, err := httpx.ParamUint(c, "productId")
	return order.ItemFilter{ProductID: id}, err
}

// @Summary  Units of a product across all order lines
// @Tags     order-items
// @Produce  json
// @Param    productId path int true "product id"
// @Success  200 {object} map[string]int64
// @Router   /order-items/product/{productId}/quantity [get]
func productQuantityHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "productId")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		n, err := svc.ProductQuantity(c.Request.Context(), id)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_id": id, "quantity": n})
	}
}

// @Summary  Get an order item
// @Tags     order-items
// @Produce  json
// @Param    id path int true "item id"
// @Success  200 {object} order.Item
// @Failure  404
// @Router   /order-items/{id} [get]
func getItemHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.GetItem(c.Request.Context(), id)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Add a line to an order
// @Tags     order-items
// @Accept   json
// @Produce  json
// @Param    body body order.ItemCreateRequest true "item"
// @Success  201 {object} order.Item
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /order-items [post]
func createItemHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.ItemCreateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.CreateItem(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update an order line
// @Tags     order-items
// @Accept   json
// @Produce  json
// @Param    id   path int                     true "item id"
// @Param    body body order.ItemCreateRequest true "item"
// @Success  200 {object} order.Item
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /order-items/{id} [put]
func updateItemHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in order.ItemCreateRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.UpdateItem(c.Request.Context(), id, in)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete an order line
// @Tags     order-items
// @Param    id path int true "item id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Router   /order-items/{id} [delete]
func deleteItemHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.DeleteItem(c.Request.Context(), id); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
