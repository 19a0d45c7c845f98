// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/pos_backend/main.go -o cmd/docs` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/session/login": {"post": {"tags": ["session"], "summary": "Sign in", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}},
        "/session/logout": {"post": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "Sign out", "responses": {"204": {"description": "No Content"}}}},
        "/session/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["session"], "summary": "Current session", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/orders": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Create a new order", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/orders/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Get an order by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/orders/{id}/payment-status": {"patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Change the payment status of an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}/work-status": {"patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Change the work status of an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}/payment-method": {"patch": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Change the payment method of an order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}/payment-qr": {"get": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Payment QR link", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}/export": {"post": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Export the invoice PDF", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}, "502": {"description": "Bad Gateway"}}}},
        "/orders/{id}/export/schedule": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Schedule an invoice export", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"202": {"description": "Accepted"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["orders"], "summary": "Cancel a scheduled export", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Record an expense", "responses": {"201": {"description": "Created"}}}
        },
        "/expenses/categories": {"get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Suggested expense categories", "responses": {"200": {"description": "OK"}}}},
        "/presets": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "List preset services", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["presets"], "summary": "Add a preset service", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}
        },
        "/reports/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Dashboard report", "parameters": [{"type": "string", "name": "bucket", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/reports/time-series": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Revenue and expense chart", "parameters": [{"type": "string", "name": "bucket", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/reports/employees": {"get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Employee revenue ranking", "responses": {"200": {"description": "OK"}}}},
        "/assistant/parse-order": {"post": {"security": [{"BearerAuth": []}], "tags": ["assistant"], "summary": "Suggest order lines from free text", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Print Shop POS API",
	Description:      "Orders, invoices, expenses and revenue reports for a print and copy shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
