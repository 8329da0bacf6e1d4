// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/oauth/token": {
            "post": {"tags": ["OAuth2"], "summary": "Token Endpoint", "consumes": ["application/x-www-form-urlencoded"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/oauth/authorize": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["OAuth2"], "summary": "Authorization Endpoint", "responses": {"302": {"description": "Found"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/auth/register": {
            "post": {"tags": ["auth"], "summary": "Register a user", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/api/v1/pizzas": {
            "get": {"tags": ["pizzas"], "summary": "Get all pizzas", "parameters": [{"type": "string", "name": "name", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["pizzas"], "summary": "Create a new pizza", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/pizzas/popular": {
            "get": {"tags": ["reports"], "summary": "Most ordered pizzas", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/pizzas/by-price": {
            "get": {"tags": ["reports"], "summary": "Pizzas sorted by ascending price", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/pizzas/{id}": {
            "get": {"tags": ["pizzas"], "summary": "Get pizza by ID", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["pizzas"], "summary": "Update a pizza", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["pizzas"], "summary": "Delete a pizza", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/ingredients": {
            "get": {"tags": ["ingredients"], "summary": "List ingredients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["ingredients"], "summary": "Create an ingredient", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/ingredients/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["ingredients"], "summary": "Delete an ingredient", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/orders": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Place an order", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/orders/stats": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Order statistics", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/orders/recent": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Most recent orders", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/orders/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Get an order", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Update order status", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Cancel an order", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/users/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Current user profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update contact details", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/users/active": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Users ranked by number of orders", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/clients": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "List OAuth2 clients", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "Create OAuth2 client", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/clients/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["OAuth2 Clients"], "summary": "Delete OAuth2 client", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizza Orders API",
	Description:      "Pizza catalog, orders and reporting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
