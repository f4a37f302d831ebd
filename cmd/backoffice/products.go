package main

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/product"
)

// imageUpload returns the optional "image" part of a multipart request.
func imageUpload(c *gin.Context) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, httpx.BindError(err)
	}
	return fh, nil
}

// productFilterHandler serves every product listing; filter derives the
// predicates from the request.
//
// @Summary  List or search products
// @Tags     products
// @Produce  json
// @Param    name query string false "substring, case-insensitive (search only)"
// @Success  200 {array} product.Product
// @Router   /products [get]
// @Router   /products/search [get]
// @Router   /products/category/{categoryId} [get]
// @Router   /products/family/{familyId} [get]
func productFilterHandler(svc *product.Service, filter func(*gin.Context) (product.Filter, error)) gin.HandlerFunc {
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

func allProducts(*gin.Context) (product.Filter, error) { return product.Filter{}, nil }

func productsByName(c *gin.Context) (product.Filter, error) {
	name, err := httpx.RequiredQuery(c, "name")
	return product.Filter{Name: name}, err
}

func productsByCategory(c *gin.Context) (product.Filter, error) {
	id, err := httpx.ParamUint(c, "categoryId")
	return product.Filter{CategoryID: id}, err
}

func productsByFamily(c *gin.Context) (product.Filter, error) {
	return product.Filter{FamilyID: c.Param("familyId")}, nil
}

// @Summary  Products priced within [min, max]
// @Tags     products
// @Produce  json
// @Param    min query number true "lower bound, inclusive"
// @Param    max query number true "upper bound, inclusive"
// @Success  200 {array} product.Product
// @Failure  400 {object} httpx.ErrorBody
// @Router   /products/price-range [get]
func productPriceRangeHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lo, err := httpx.QueryDecimal(c, "min")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		hi, err := httpx.QueryDecimal(c, "max")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.PriceRange(c.Request.Context(), lo, hi)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} product.Product
// @Failure  404
// @Router   /products/{id} [get]
func getProductHandler(svc *product.Service) gin.HandlerFunc {
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

// @Summary  Create a product (multipart)
// @Tags     products
// @Accept   multipart/form-data
// @Produce  json
// @Param    name            formData string true  "name"
// @Param    description     formData string false "description"
// @Param    price           formData string true  "price"
// @Param    categoryId      formData int    false "category id"
// @Param    productFamilyId formData string false "product family id"
// @Param    notes           formData string false "notes"
// @Param    image           formData file   false "image/*, max 5MB"
// @Success  201 {object} product.Product
// @Failure  400 {object} httpx.ErrorBody
// @Router   /products [post]
func createProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.Request
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

// @Summary  Create a product (JSON, no image)
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body body product.Request true "product"
// @Success  201 {object} product.Product
// @Failure  400 {object} httpx.ErrorBody
// @Router   /products/json [post]
func createProductJSONHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.Request
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		out, err := svc.Create(c.Request.Context(), in, nil)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update a product
// @Description Multipart or JSON. A new image replaces the stored one.
// @Tags     products
// @Accept   multipart/form-data
// @Accept   json
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} product.Product
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /products/{id} [put]
func updateProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParamUint(c, "id")
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		var in product.Request
		if err := c.ShouldBind(&in); err != nil {
			httpx.WriteError(c, httpx.BindError(err))
			return
		}
		img, err := imageUpload(c)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		out, err := svc.Update(c.Request.Context(), id, in, img)
		if err != nil {
			httpx.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete a product
// @Tags     products
// @Param    id path int true "product id"
// @Success  204
// @Failure  404 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /products/{id} [delete]
func deleteProductHandler(svc *product.Service) gin.HandlerFunc {
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
