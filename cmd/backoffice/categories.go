package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/httpx"
)

// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200 {array} category.Category
// @Router   /categories [get]
func listCategoriesHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a category
// @Tags     categories
// @Produce  json
// @Param    id path int true "category id"
// @Success  200 {object} category.Category
// @Failure  404
// @Router   /categories/{id} [get]
func getCategoryHandler(svc *category.Service) gin.HandlerFunc {
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

// @Summary  Create a category
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    body body category.Request true "category"
// @Success  201 {object} category.Category
// @Failure  400 {object} httpx.ErrorBody
// @Router   /categories [post]
func createCategoryHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in category.Request
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

// @Summary  Update a category
// @Tags     categories
// @Accept   json
// @Produce  json
// @Param    id   path int              true "category id"
// @Param    body body category.Request true "category"
// @Success  200 {object} category.Category
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /categories/{id} [put]
func updateCategoryHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in category.Request
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

// @Summary  Delete a category
// @Tags     categories
// @Param    id path int true "category id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /categories/{id} [delete]
func deleteCategoryHandler(svc *category.Service) gin.HandlerFunc {
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

// @Summary  Search categories by name
// @Tags     categories
// @Produce  json
// @Param    name query string true "substring, case-insensitive"
// @Success  200 {array} category.Category
// @Router   /categories/search [get]
func searchCategoriesHandler(svc *category.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := httpx.RequiredQuery(c, "name")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.Search(c.Request.Context(), name)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
