package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/family"
	"github.com/MikeMC777/restau-management/internal/httpx"
)

// @Summary  List or search product families
// @Tags     product-families
// @Produce  json
// @Param    name query string false "substring, case-insensitive (search only)"
// @Success  200 {array} family.Family
// @Router   /product-families [get]
// @Router   /product-families/search [get]
// @Router   /product-families/by-category/{categoryId} [get]
func listFamiliesHandler(svc *family.Service, filter func(*gin.Context) (family.Filter, error)) gin.HandlerFunc {
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

func allFamilies(*gin.Context) (family.Filter, error) { return family.Filter{}, nil }

func familiesByName(c *gin.Context) (family.Filter, error) {
	name, err := httpx.RequiredQuery(c, "name")
	return family.Filter{Name: name}, err
}

func familiesByCategory(c *gin.Context) (family.Filter, error) {
	id, err := httpx.ParamUint(c, "categoryId")
	return family.Filter{CategoryID: id}, err
}

// @Summary  Get a product family
// @Tags     product-families
// @Produce  json
// @Param    id path string true "family id (UUID)"
// @Success  200 {object} family.Family
// @Failure  404
// @Router   /product-families/{id} [get]
func getFamilyHandler(svc *family.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httpx.WriteLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create a product family
// @Description Multipart with an optional image, or JSON with an optional image_url.
// @Tags     product-families
// @Accept   multipart/form-data
// @Accept   json
// @Produce  json
// @Param    name         formData string true  "name"
// @Param    description  formData string false "description"
// @Param    categoryId   formData int    true  "category id"
// @Param    imageAltText formData string false "alt text"
// @Param    image        formData file   false "image/*, max 5MB"
// @Success  201 {object} family.Family
// @Failure  400 {object} httpx.ErrorBody
// @Router   /product-families [post]
func createFamilyHandler(svc *family.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in family.Request
		if err := c.ShouldBind(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		img, err := imageUpload(c)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.Create(c.Request.Context(), in, img)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update a product family
// @Tags     product-families
// @Accept   multipart/form-data
// @Accept   json
// @Produce  json
// @Param    id path string true "family id (UUID)"
// @Success  200 {object} family.Family
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /product-families/{id} [put]
func updateFamilyHandler(svc *family.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in family.Request
		if err := c.ShouldBind(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		img, err := imageUpload(c)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.Update(c.Request.Context(), c.Param("id"), in, img)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a product family
// @Tags     product-families
// @Param    id path string true "family id (UUID)"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /product-families/{id} [delete]
func deleteFamilyHandler(svc *family.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
