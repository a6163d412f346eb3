// Package docs registers the OpenAPI document served under /swagger. Regenerate
// with `swag init -g cmd/server/main.go` after changing handler annotations.
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
            "get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}}}}
        },
        "/auth/signup": {
            "post": {"tags": ["auth"], "summary": "Register a user and start a session",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.SignupInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Exchange credentials for a token",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.SessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.MeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/user.UserResponse"}}}}},
            "post": {"tags": ["users"], "summary": "Create a user", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/user.NewUser"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/user.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/accounts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "List the caller's accounts", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.AccountResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Create an account", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.CreateAccountInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/account.AccountResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "List the caller's transactions", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "accountId", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.TransactionResponse"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["transactions"], "summary": "Record a transaction", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.CreateTransactionInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/account.TransactionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}}}
        },
        "/ai/chat": {
            "post": {"tags": ["coach"], "summary": "Canned money tips", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/coach.ChatInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/coach.ChatResponse"}}}}
        }
    },
    "definitions": {
        "common.ErrorResponse": {"type": "object", "properties": {"error": {}}},
        "health.Response": {"type": "object", "properties": {"ok": {"type": "boolean"}, "service": {"type": "string"}, "time": {"type": "string"}}},
        "auth.SignupInput": {"type": "object", "required": ["email", "password"], "properties": {
            "email": {"type": "string", "maxLength": 255}, "name": {"type": "string", "maxLength": 255}, "password": {"type": "string", "minLength": 6, "maxLength": 72}}},
        "auth.LoginInput": {"type": "object", "required": ["email", "password"], "properties": {
            "email": {"type": "string"}, "password": {"type": "string"}}},
        "auth.SessionResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/user.UserResponse"}, "token": {"type": "string"}}},
        "auth.MeResponse": {"type": "object", "properties": {"user": {"$ref": "#/definitions/user.UserResponse"}}},
        "user.NewUser": {"type": "object", "required": ["email", "password"], "properties": {
            "email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string", "minLength": 6}}},
        "user.UserResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "createdAt": {"type": "string"}}},
        "account.CreateAccountInput": {"type": "object", "required": ["name", "type"], "properties": {
            "name": {"type": "string"}, "institution": {"type": "string"}, "type": {"type": "string"},
            "subtype": {"type": "string"}, "mask": {"type": "string", "maxLength": 4}}},
        "account.AccountResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "userId": {"type": "string"}, "name": {"type": "string"}, "institution": {"type": "string"},
            "type": {"type": "string"}, "subtype": {"type": "string"}, "mask": {"type": "string"}, "createdAt": {"type": "string"}}},
        "account.CreateTransactionInput": {"type": "object", "required": ["accountId", "postedAt", "amount"], "properties": {
            "accountId": {"type": "string"}, "postedAt": {"type": "string"}, "amount": {"type": "string"}, "pending": {"type": "boolean"},
            "merchant": {"type": "string"}, "category": {"type": "string"}, "note": {"type": "string"}}},
        "account.TransactionResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "accountId": {"type": "string"}, "userId": {"type": "string"}, "postedAt": {"type": "string"},
            "amount": {"type": "string"}, "pending": {"type": "boolean"}, "currency": {"type": "string"},
            "merchant": {"type": "string"}, "category": {"type": "string"}, "note": {"type": "string"}, "createdAt": {"type": "string"}}},
        "coach.ChatInput": {"type": "object", "required": ["message"], "properties": {"message": {"type": "string", "maxLength": 2000}}},
        "coach.ChatResponse": {"type": "object", "properties": {"reply": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Enter your Bearer token in the format: ` + "`" + `Bearer {token}` + "`" + `", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Prosperity Compass API",
	Description:      "Personal finance backend: auth, accounts and transactions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
