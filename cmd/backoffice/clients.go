package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/httpx"
)

// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Success  200 {array} client.Client
// @Router   /clients [get]
func listClientsHandler(svc *client.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    id path int true "client id"
// @Success  200 {object} client.Client
// @Failure  404
// @Router   /clients/{id} [get]
func getClientHandler(svc *client.Service) gin.HandlerFunc {
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

// @Summary  Create a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    body body client.Request true "client"
// @Success  201 {object} client.Client
// @Failure  400 {object} httpx.ErrorBody
// @Router   /clients [post]
func createClientHandler(svc *client.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in client.Request
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

// @Summary  Update a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id   path int            true "client id"
// @Param    body body client.Request true "client"
// @Success  200 {object} client.Client
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /clients/{id} [put]
func updateClientHandler(svc *client.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in client.Request
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

// @Summary  Delete a client
// @Tags     clients
// @Param    id path int true "client id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /clients/{id} [delete]
func deleteClientHandler(svc *client.Service) gin.HandlerFunc {
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

// searchClientsHandler serves the three name searches; by picks which.
//
// @Summary  Search clients by first, last or full name
// @Tags     clients
// @Produce  json
// @Param    firstName query string false "first name"
// @Param    lastName  query string false "last name"
// @Success  200 {array} client.Client
// @Failure  400 {object} httpx.ErrorBody
// @Router   /clients/search/first-name [get]
// @Router   /clients/search/last-name [get]
// @Router   /clients/search/full-name [get]
func searchClientsHandler(svc *client.Service, by string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			out []client.Client
			err error
		)
		switch by {
		case "first":
			var q string
			if q, err = httpx.RequiredQuery(c, "firstName"); err == nil {
				out, err = svc.SearchFirstName(c.Request.Context(), q)
			}
		case "last":
			var q string
			if q, err = httpx.RequiredQuery(c, "lastName"); err == nil {
				out, err = svc.SearchLastName(c.Request.Context(), q)
			}
		default:
			out, err = svc.SearchFullName(c.Request.Context(), c.Query("firstName"), c.Query("lastName"))
		}
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
