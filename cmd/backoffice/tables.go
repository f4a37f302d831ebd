package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/apperr"
	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/printing"
	"github.com/MikeMC777/restau-management/internal/table"
)

// listTablesHandler lists tables narrowed by the fixed filter plus the
// optional path capacity.
//
// @Summary  List tables
// @Tags     tables
// @Produce  json
// @Success  200 {array} table.Table
// @Router   /tables [get]
// @Router   /tables/available [get]
// @Router   /tables/capacity/{capacity} [get]
// @Router   /tables/available/capacity/{capacity} [get]
func listTablesHandler(svc *table.Service, fixed table.Filter) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := fixed
		if c.Param("capacity") != "" {
			n, err := httpx.ParamInt(c, "capacity")
			if err != nil {
				httpx.WriteError(c, err)
				return
			}
			f.MinCapacity = n
		}
		out, err := svc.List(c.Request.Context(), f)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a table
// @Tags     tables
// @Produce  json
// @Param    id path int true "table id"
// @Success  200 {object} table.Table
// @Failure  404
// @Router   /tables/{id} [get]
func getTableHandler(svc *table.Service) gin.HandlerFunc {
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

// @Summary  Get a table by its number
// @Tags     tables
// @Produce  json
// @Param    number path int true "table number"
// @Success  200 {object} table.Table
// @Failure  404
// @Router   /tables/number/{number} [get]
func getTableByNumberHandler(svc *table.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := httpx.ParamInt(c, "number")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.GetByNumber(c.Request.Context(), n)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a table
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    body body table.Request true "table"
// @Success  201 {object} table.Table
// @Failure  400 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /tables [post]
func createTableHandler(svc *table.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in table.Request
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

// @Summary  Update a table
// @Description Refused with 409 while an ON GOING order is seated at the table.
// @Tags     tables
// @Accept   json
// @Produce  json
// @Param    id   path int           true "table id"
// @Param    body body table.Request true "table"
// @Success  200 {object} table.Table
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /tables/{id} [put]
func updateTableHandler(svc *table.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in table.Request
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

// @Summary  Delete a table
// @Tags     tables
// @Param    id path int true "table id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /tables/{id} [delete]
func deleteTableHandler(svc *table.Service) gin.HandlerFunc {
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

// @Summary  Set table availability
// @Tags     tables
// @Param    id        path  int  true "table id"
// @Param    available query bool true "new availability"
// @Success  204
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404
// @Router   /tables/{id}/availability [patch]
func setTableAvailabilityHandler(svc *table.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		available, ok, err := httpx.QueryBool(c, "available")
		if err == nil && !ok {
			err = apperr.Validation("available is required")
		}
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		if err := svc.SetAvailability(c.Request.Context(), id, available); err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// @Summary  QR code for a table
// @Description PNG pointing at the public menu for the table's number.
// @Tags     tables
// @Produce  png
// @Param    id   path  int true  "table id"
// @Param    size query int false "pixels, default 256"
// @Success  200 {file} binary
// @Failure  404
// @Router   /tables/{id}/qrcode [get]
func tableQRCodeHandler(svc *table.Service, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		size := 256
		if s := c.Query("size"); s != "" {
			if size, err = strconv.Atoi(s); err != nil || size < 64 || size > 2048 {
				httpx.WriteError(c, apperr.Validation("size must be between 64 and 2048"))
				return
			}
		}
		t, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		png, err := printing.QR(printing.TableURL(baseURL, t.Number), size)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
