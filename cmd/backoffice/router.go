package main

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/restau-management/docs"
	"github.com/MikeMC777/restau-management/internal/category"
	"github.com/MikeMC777/restau-management/internal/client"
	"github.com/MikeMC777/restau-management/internal/family"
	"github.com/MikeMC777/restau-management/internal/httpx"
	"github.com/MikeMC777/restau-management/internal/order"
	"github.com/MikeMC777/restau-management/internal/payment"
	"github.com/MikeMC777/restau-management/internal/paymentmethod"
	"github.com/MikeMC777/restau-management/internal/product"
	"github.com/MikeMC777/restau-management/internal/table"
	"github.com/MikeMC777/restau-management/internal/user"
)

type services struct {
	categories *category.Service
	clients    *client.Service
	families   *family.Service
	orders     *order.Service
	payments   *payment.Service
	methods    *paymentmethod.Service
	products   *product.Service
	tables     *table.Service
	users      *user.Service
}

type routerConfig struct {
	log        *slog.Logger
	uploadRoot string
	baseURL    string
	origins    []string
	limiter    *httpx.RateLimiter
	ping       func(context.Context) error
}

func newRouter(svc services, rc routerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(rc.log), httpx.CORS(rc.origins))
	if rc.limiter != nil {
		r.Use(rc.limiter.Middleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := rc.ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Static("/"+product.ImageDir, filepath.Join(rc.uploadRoot, product.ImageDir))
	r.Static("/"+family.ImageDir, filepath.Join(rc.uploadRoot, family.ImageDir))
	r.Static("/uploads", rc.uploadRoot)

	api := r.Group("/api")

	cat := api.Group("/categories", httpx.ETag())
	cat.GET("", listCategoriesHandler(svc.categories))
	cat.GET("/search", searchCategoriesHandler(svc.categories))
	cat.GET("/:id", getCategoryHandler(svc.categories))
	cat.POST("", createCategoryHandler(svc.categories))
	cat.PUT("/:id", updateCategoryHandler(svc.categories))
	cat.DELETE("/:id", deleteCategoryHandler(svc.categories))

	cl := api.Group("/clients")
	cl.GET("", listClientsHandler(svc.clients))
	cl.GET("/search/first-name", searchClientsHandler(svc.clients, "first"))
	cl.GET("/search/last-name", searchClientsHandler(svc.clients, "last"))
	cl.GET("/search/full-name", searchClientsHandler(svc.clients, "full"))
	cl.GET("/:id", getClientHandler(svc.clients))
	cl.POST("", createClientHandler(svc.clients))
	cl.PUT("/:id", updateClientHandler(svc.clients))
	cl.DELETE("/:id", deleteClientHandler(svc.clients))

	us := api.Group("/users")
	us.GET("", listUsersHandler(svc.users))
	us.GET("/:id", getUserHandler(svc.users))
	us.POST("", createUserHandler(svc.users))
	us.PUT("/:id", updateUserHandler(svc.users))
	us.DELETE("/:id", deleteUserHandler(svc.users))

	yes := true
	tb := api.Group("/tables")
	tb.GET("", listTablesHandler(svc.tables, table.Filter{}))
	tb.GET("/available", listTablesHandler(svc.tables, table.Filter{Available: &yes}))
	tb.GET("/available/capacity/:capacity", listTablesHandler(svc.tables, table.Filter{Available: &yes}))
	tb.GET("/capacity/:capacity", listTablesHandler(svc.tables, table.Filter{}))
	tb.GET("/number/:number", getTableByNumberHandler(svc.tables))
	tb.GET("/:id", getTableHandler(svc.tables))
	tb.GET("/:id/qrcode", tableQRCodeHandler(svc.tables, rc.baseURL))
	tb.POST("", createTableHandler(svc.tables))
	tb.PUT("/:id", updateTableHandler(svc.tables))
	tb.PATCH("/:id/availability", setTableAvailabilityHandler(svc.tables))
	tb.DELETE("/:id", deleteTableHandler(svc.tables))

	pr := api.Group("/products", httpx.ETag())
	pr.GET("", productFilterHandler(svc.products, allProducts))
	pr.GET("/search", productFilterHandler(svc.products, productsByName))
	pr.GET("/category/:categoryId", productFilterHandler(svc.products, productsByCategory))
	pr.GET("/family/:familyId", productFilterHandler(svc.products, productsByFamily))
	pr.GET("/price-range", productPriceRangeHandler(svc.products))
	pr.GET("/:id", getProductHandler(svc.products))
	pr.POST("", createProductHandler(svc.products))
	pr.POST("/json", createProductJSONHandler(svc.products))
	pr.PUT("/:id", updateProductHandler(svc.products))
	pr.DELETE("/:id", deleteProductHandler(svc.products))

	fa := api.Group("/product-families", httpx.ETag())
	fa.GET("", listFamiliesHandler(svc.families, allFamilies))
	fa.GET("/search", listFamiliesHandler(svc.families, familiesByName))
	fa.GET("/by-category/:categoryId", listFamiliesHandler(svc.families, familiesByCategory))
	fa.GET("/:id", getFamilyHandler(svc.families))
	fa.POST("", createFamilyHandler(svc.families))
	fa.PUT("/:id", updateFamilyHandler(svc.families))
	fa.DELETE("/:id", deleteFamilyHandler(svc.families))

	or := api.Group("/orders")
	or.GET("", listOrdersHandler(svc.orders, allOrders))
	or.GET("/today", todayOrdersHandler(svc.orders))
	or.GET("/status/:status", listOrdersHandler(svc.orders, ordersByStatus))
	or.GET("/user/:userId", listOrdersHandler(svc.orders, ordersByUser))
	or.GET("/client/:clientId", clientOrdersHandler(svc.orders))
	or.GET("/:id", getOrderHandler(svc.orders))
	or.POST("", createOrderHandler(svc.orders))
	or.PUT("/:id", replaceOrderHandler(svc.orders))
	or.PUT("/:id/quantities", updateQuantitiesHandler(svc.orders))
	or.PUT("/:id/assign-client", assignClientHandler(svc.orders))
	or.POST("/:id/complete", finishOrderHandler(completeOrder(svc.orders)))
	or.POST("/:id/cancel", finishOrderHandler(cancelOrder(svc.orders)))
	or.DELETE("/:id", deleteOrderHandler(svc.orders))

	oi := api.Group("/order-items")
	oi.GET("", listItemsHandler(svc.orders, allItems))
	oi.GET("/order/:orderId", listItemsHandler(svc.orders, itemsByOrder))
	oi.GET("/product/:productId", listItemsHandler(svc.orders, itemsByProduct))
	oi.GET("/product/:productId/quantity", productQuantityHandler(svc.orders))
	oi.GET("/:id", getItemHandler(svc.orders))
	oi.POST("", createItemHandler(svc.orders))
	oi.PUT("/:id", updateItemHandler(svc.orders))
	oi.DELETE("/:id", deleteItemHandler(svc.orders))

	receipts := receiptSources{
		payments: svc.payments,
		orders:   svc.orders,
		products: svc.products,
		methods:  svc.methods,
		baseURL:  rc.baseURL,
	}
	pa := api.Group("/payments")
	pa.GET("", listPaymentsHandler(svc.payments))
	pa.GET("/today-revenue", todayRevenueHandler(svc.payments))
	pa.GET("/date-range", paymentDateRangeHandler(svc.payments))
	pa.GET("/status/:status", listPaymentsHandler(svc.payments))
	pa.GET("/order/:orderId", lookupPaymentHandler(paymentByOrder(svc.payments)))
	pa.GET("/transaction/:transactionId", lookupPaymentHandler(paymentByTransaction(svc.payments)))
	pa.GET("/receipt-number/:number", lookupPaymentHandler(paymentByReceipt(svc.payments)))
	pa.GET("/:id", lookupPaymentHandler(paymentByID(svc.payments)))
	pa.GET("/:id/receipt", paymentReceiptHandler(receipts))
	pa.POST("", createPaymentHandler(svc.payments))
	pa.PUT("/:id", updatePaymentHandler(svc.payments))
	pa.DELETE("/:id", deletePaymentHandler(svc.payments))

	pm := api.Group("/payment-methods")
	pm.GET("", listMethodsHandler(svc.methods, false))
	pm.GET("/active", listMethodsHandler(svc.methods, true))
	pm.GET("/search", listMethodsHandler(svc.methods, false))
	pm.GET("/:id", getMethodHandler(svc.methods))
	pm.POST("", createMethodHandler(svc.methods))
	pm.PUT("/:id", updateMethodHandler(svc.methods))
	pm.DELETE("/:id", deleteMethodHandler(svc.methods))

	return r
}
