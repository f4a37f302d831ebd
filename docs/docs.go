// Package docs is generated by swag from the handler annotations in cmd/backoffice.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{marshal .Schemes}},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/category.Category"
							}
						}
					}
				},
				"summary": "List categories",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"categories"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/category.Request"
						},
						"description": "category",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/category.Category"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a category",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/categories/search": {
			"get": {
				"tags": [
					"categories"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive",
						"name": "name",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/category.Category"
							}
						}
					}
				},
				"summary": "Search categories by name",
				"produces": [
					"application/json"
				]
			}
		},
		"/categories/{id}": {
			"get": {
				"tags": [
					"categories"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "category id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/category.Category"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a category",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"categories"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "category id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/category.Request"
						},
						"description": "category",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/category.Category"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a category",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"categories"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "category id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a category"
			}
		},
		"/clients": {
			"get": {
				"tags": [
					"clients"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/client.Client"
							}
						}
					}
				},
				"summary": "List clients",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/client.Request"
						},
						"description": "client",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/client.Client"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a client",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/clients/search/first-name": {
			"get": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "string",
						"description": "first name",
						"name": "firstName",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "last name",
						"name": "lastName",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/client.Client"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Search clients by first, last or full name",
				"produces": [
					"application/json"
				]
			}
		},
		"/clients/search/full-name": {
			"get": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "string",
						"description": "first name",
						"name": "firstName",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "last name",
						"name": "lastName",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/client.Client"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Search clients by first, last or full name",
				"produces": [
					"application/json"
				]
			}
		},
		"/clients/search/last-name": {
			"get": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "string",
						"description": "first name",
						"name": "firstName",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "last name",
						"name": "lastName",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/client.Client"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Search clients by first, last or full name",
				"produces": [
					"application/json"
				]
			}
		},
		"/clients/{id}": {
			"get": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "client id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/client.Client"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a client",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "client id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/client.Request"
						},
						"description": "client",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/client.Client"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a client",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"clients"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "client id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a client"
			}
		},
		"/order-items": {
			"get": {
				"tags": [
					"order-items"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Item"
							}
						}
					}
				},
				"summary": "List order items",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/order.ItemCreateRequest"
						},
						"description": "item",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/order.Item"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Add a line to an order",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/order-items/order/{orderId}": {
			"get": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "orderId",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Item"
							}
						}
					}
				},
				"summary": "List order items",
				"produces": [
					"application/json"
				]
			}
		},
		"/order-items/product/{productId}": {
			"get": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "productId",
						"name": "productId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Item"
							}
						}
					}
				},
				"summary": "List order items",
				"produces": [
					"application/json"
				]
			}
		},
		"/order-items/product/{productId}/quantity": {
			"get": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "productId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "integer"
							}
						}
					}
				},
				"summary": "Units of a product across all order lines",
				"produces": [
					"application/json"
				]
			}
		},
		"/order-items/{id}": {
			"get": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "item id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Item"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get an order item",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "item id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/order.ItemCreateRequest"
						},
						"description": "item",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Item"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update an order line",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"order-items"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "item id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete an order line"
			}
		},
		"/orders": {
			"get": {
				"tags": [
					"orders"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Order"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "List orders",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/order.CreateRequest"
						},
						"description": "order",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/order.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Open an order",
				"description": "Claims the table atomically, prices every line and stores the total, all in one transaction.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/client/{clientId}": {
			"get": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "client id",
						"name": "clientId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO date, inclusive",
						"name": "from",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "ISO date, inclusive",
						"name": "to",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Order"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Orders of a client",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/status/{status}": {
			"get": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "string",
						"description": "status",
						"name": "status",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Order"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "List orders",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/today": {
			"get": {
				"tags": [
					"orders"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Order"
							}
						}
					}
				},
				"summary": "Orders created today",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/user/{userId}": {
			"get": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "userId",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.Order"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "List orders",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/{id}": {
			"get": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Response"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get an order with its items",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/order.ReplaceRequest"
						},
						"description": "order",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Replace an order",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete an unpaid order"
			}
		},
		"/orders/{id}/assign-client": {
			"put": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/order.AssignClientRequest"
						},
						"description": "client",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Assign a client and settle the order",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/{id}/cancel": {
			"post": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Order"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Complete or cancel an order",
				"description": "Sets the status from any current status and frees the table the order occupies.",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/{id}/complete": {
			"post": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Order"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Complete or cancel an order",
				"description": "Sets the status from any current status and frees the table the order occupies.",
				"produces": [
					"application/json"
				]
			}
		},
		"/orders/{id}/quantities": {
			"put": {
				"tags": [
					"orders"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "order id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/order.QuantityUpdate"
							}
						},
						"description": "new quantities",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/order.Order"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update item quantities",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/payment-methods": {
			"get": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "string",
						"description": "type contains, case-insensitive",
						"name": "type",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "name contains, case-insensitive",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/paymentmethod.Method"
							}
						}
					}
				},
				"summary": "List payment methods",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/paymentmethod.Request"
						},
						"description": "method",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/paymentmethod.Method"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a payment method",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/payment-methods/active": {
			"get": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "string",
						"description": "type contains, case-insensitive",
						"name": "type",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "name contains, case-insensitive",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/paymentmethod.Method"
							}
						}
					}
				},
				"summary": "List payment methods",
				"produces": [
					"application/json"
				]
			}
		},
		"/payment-methods/search": {
			"get": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "string",
						"description": "type contains, case-insensitive",
						"name": "type",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "name contains, case-insensitive",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/paymentmethod.Method"
							}
						}
					}
				},
				"summary": "List payment methods",
				"produces": [
					"application/json"
				]
			}
		},
		"/payment-methods/{id}": {
			"get": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "method id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paymentmethod.Method"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a payment method",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "method id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/paymentmethod.Request"
						},
						"description": "method",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/paymentmethod.Method"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a payment method",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"payment-methods"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "method id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a payment method"
			}
		},
		"/payments": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "string",
						"description": "PENDING, COMPLETED, FAILED or REFUNDED",
						"name": "status",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/payment.Payment"
							}
						}
					}
				},
				"summary": "List payments",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/payment.Request"
						},
						"description": "payment",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Record a payment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/date-range": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "string",
						"description": "ISO date or date-time",
						"name": "start",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO date or date-time, inclusive",
						"name": "end",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/payment.Payment"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Payments in a date range",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/order/{orderId}": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "orderId",
						"name": "orderId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a payment",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/receipt-number/{number}": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "string",
						"description": "number",
						"name": "number",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a payment",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/status/{status}": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "string",
						"description": "PENDING, COMPLETED, FAILED or REFUNDED",
						"name": "status",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"description": "status",
						"name": "status",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/payment.Payment"
							}
						}
					}
				},
				"summary": "List payments",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/today-revenue": {
			"get": {
				"tags": [
					"payments"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Revenue"
						}
					}
				},
				"summary": "Revenue of today's completed payments",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/transaction/{transactionId}": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "string",
						"description": "transactionId",
						"name": "transactionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a payment",
				"produces": [
					"application/json"
				]
			}
		},
		"/payments/{id}": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a payment",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "payment id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/payment.Request"
						},
						"description": "payment",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/payment.Payment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a payment",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "payment id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a payment"
			}
		},
		"/payments/{id}/receipt": {
			"get": {
				"tags": [
					"payments"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "payment id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Printable receipt of a payment",
				"produces": [
					"application/pdf"
				]
			}
		},
		"/product-families": {
			"get": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/family.Family"
							}
						}
					}
				},
				"summary": "List or search product families",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "name",
						"name": "name",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "description",
						"name": "description",
						"in": "formData",
						"required": false
					},
					{
						"type": "integer",
						"description": "category id",
						"name": "categoryId",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "alt text",
						"name": "imageAltText",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "image/*, max 5MB",
						"name": "image",
						"in": "formData",
						"required": false
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/family.Family"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a product family",
				"description": "Multipart with an optional image, or JSON with an optional image_url.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/product-families/by-category/{categoryId}": {
			"get": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "categoryId",
						"name": "categoryId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/family.Family"
							}
						}
					}
				},
				"summary": "List or search product families",
				"produces": [
					"application/json"
				]
			}
		},
		"/product-families/search": {
			"get": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/family.Family"
							}
						}
					}
				},
				"summary": "List or search product families",
				"produces": [
					"application/json"
				]
			}
		},
		"/product-families/{id}": {
			"get": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "family id (UUID)",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/family.Family"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a product family",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "family id (UUID)",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/family.Family"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a product family",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"product-families"
				],
				"parameters": [
					{
						"type": "string",
						"description": "family id (UUID)",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a product family"
			}
		},
		"/products": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/product.Product"
							}
						}
					}
				},
				"summary": "List or search products",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "string",
						"description": "name",
						"name": "name",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "description",
						"name": "description",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "price",
						"name": "price",
						"in": "formData",
						"required": true
					},
					{
						"type": "integer",
						"description": "category id",
						"name": "categoryId",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "product family id",
						"name": "productFamilyId",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "notes",
						"name": "notes",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "image/*, max 5MB",
						"name": "image",
						"in": "formData",
						"required": false
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/product.Product"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a product (multipart)",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/products/category/{categoryId}": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "categoryId",
						"name": "categoryId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/product.Product"
							}
						}
					}
				},
				"summary": "List or search products",
				"produces": [
					"application/json"
				]
			}
		},
		"/products/family/{familyId}": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					},
					{
						"type": "integer",
						"description": "familyId",
						"name": "familyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/product.Product"
							}
						}
					}
				},
				"summary": "List or search products",
				"produces": [
					"application/json"
				]
			}
		},
		"/products/json": {
			"post": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/product.Request"
						},
						"description": "product",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/product.Product"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a product (JSON, no image)",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/products/price-range": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "number",
						"description": "lower bound, inclusive",
						"name": "min",
						"in": "query",
						"required": true
					},
					{
						"type": "number",
						"description": "upper bound, inclusive",
						"name": "max",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/product.Product"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Products priced within [min, max]",
				"produces": [
					"application/json"
				]
			}
		},
		"/products/search": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "string",
						"description": "substring, case-insensitive (search only)",
						"name": "name",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/product.Product"
							}
						}
					}
				},
				"summary": "List or search products",
				"produces": [
					"application/json"
				]
			}
		},
		"/products/{id}": {
			"get": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/product.Product"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a product",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/product.Product"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a product",
				"description": "Multipart or JSON. A new image replaces the stored one.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"products"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "product id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a product"
			}
		},
		"/tables": {
			"get": {
				"tags": [
					"tables"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/table.Table"
							}
						}
					}
				},
				"summary": "List tables",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/table.Request"
						},
						"description": "table",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/table.Table"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a table",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/tables/available": {
			"get": {
				"tags": [
					"tables"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/table.Table"
							}
						}
					}
				},
				"summary": "List tables",
				"produces": [
					"application/json"
				]
			}
		},
		"/tables/available/capacity/{capacity}": {
			"get": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "capacity",
						"name": "capacity",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/table.Table"
							}
						}
					}
				},
				"summary": "List tables",
				"produces": [
					"application/json"
				]
			}
		},
		"/tables/capacity/{capacity}": {
			"get": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "capacity",
						"name": "capacity",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/table.Table"
							}
						}
					}
				},
				"summary": "List tables",
				"produces": [
					"application/json"
				]
			}
		},
		"/tables/number/{number}": {
			"get": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table number",
						"name": "number",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/table.Table"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a table by its number",
				"produces": [
					"application/json"
				]
			}
		},
		"/tables/{id}": {
			"get": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/table.Table"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a table",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/table.Request"
						},
						"description": "table",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/table.Table"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a table",
				"description": "Refused with 409 while an ON GOING order is seated at the table.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a table"
			}
		},
		"/tables/{id}/availability": {
			"patch": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "new availability",
						"name": "available",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Set table availability"
			}
		},
		"/tables/{id}/qrcode": {
			"get": {
				"tags": [
					"tables"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "table id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "pixels, default 256",
						"name": "size",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "QR code for a table",
				"description": "PNG pointing at the public menu for the table's number.",
				"produces": [
					"image/png"
				]
			}
		},
		"/users": {
			"get": {
				"tags": [
					"users"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/user.User"
							}
						}
					}
				},
				"summary": "List staff users",
				"produces": [
					"application/json"
				]
			},
			"post": {
				"tags": [
					"users"
				],
				"parameters": [
					{
						"schema": {
							"$ref": "#/definitions/user.CreateRequest"
						},
						"description": "user",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Create a user",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			}
		},
		"/users/{id}": {
			"get": {
				"tags": [
					"users"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "user id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"404": {
						"description": "Not Found"
					}
				},
				"summary": "Get a user",
				"produces": [
					"application/json"
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "user id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"schema": {
							"$ref": "#/definitions/user.UpdateRequest"
						},
						"description": "fields to change",
						"name": "body",
						"in": "body",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/user.User"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Update a user",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				]
			},
			"delete": {
				"tags": [
					"users"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "user id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/httpx.ErrorBody"
						}
					}
				},
				"summary": "Delete a user"
			}
		}
	},
	"definitions": {
		"category.Category": {
			"type": "object"
		},
		"category.Request": {
			"type": "object"
		},
		"client.Client": {
			"type": "object"
		},
		"client.Request": {
			"type": "object"
		},
		"family.Family": {
			"type": "object"
		},
		"httpx.ErrorBody": {
			"type": "object"
		},
		"order.AssignClientRequest": {
			"type": "object"
		},
		"order.CreateRequest": {
			"type": "object"
		},
		"order.Item": {
			"type": "object"
		},
		"order.ItemCreateRequest": {
			"type": "object"
		},
		"order.Order": {
			"type": "object"
		},
		"order.QuantityUpdate": {
			"type": "object"
		},
		"order.ReplaceRequest": {
			"type": "object"
		},
		"order.Response": {
			"type": "object"
		},
		"payment.Payment": {
			"type": "object"
		},
		"payment.Request": {
			"type": "object"
		},
		"payment.Revenue": {
			"type": "object"
		},
		"paymentmethod.Method": {
			"type": "object"
		},
		"paymentmethod.Request": {
			"type": "object"
		},
		"product.Product": {
			"type": "object"
		},
		"product.Request": {
			"type": "object"
		},
		"table.Request": {
			"type": "object"
		},
		"table.Table": {
			"type": "object"
		},
		"user.CreateRequest": {
			"type": "object"
		},
		"user.UpdateRequest": {
			"type": "object"
		},
		"user.User": {
			"type": "object"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Restaurant back-office API",
	Description:      "Catalog, tables, orders and payments of a single restaurant.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
