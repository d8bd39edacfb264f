// Package docs chứa mô tả OpenAPI phục vụ cho /api-docs
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
        "/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Đăng nhập bằng email và mật khẩu",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users/login-google": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Đăng nhập bằng Google ID token",
                "parameters": [
                    {"description": "google token", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.GoogleLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/users/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Đăng ký tài khoản",
                "parameters": [
                    {"description": "new user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/ads": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ads"],
                "summary": "Tạo ad mới",
                "parameters": [
                    {"description": "ad", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAdRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/ads/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ads"],
                "summary": "Tìm kiếm ads",
                "parameters": [
                    {"type": "string", "description": "từ khóa", "name": "q", "in": "query"},
                    {"type": "string", "description": "hãng xe", "name": "brand", "in": "query"},
                    {"type": "string", "description": "thành phố", "name": "city", "in": "query"},
                    {"type": "integer", "description": "trạng thái", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ResponseTotal"}}
                }
            }
        },
        "/ads/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ads"],
                "summary": "Lấy ad theo id",
                "parameters": [
                    {"type": "integer", "description": "Ad ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/rates": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rates"],
                "summary": "Đánh giá ad (1-5), mỗi user một lần",
                "parameters": [
                    {"description": "rate", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateRateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin/ads-with-average-rate": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Danh sách ads kèm điểm trung bình, tăng dần",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ResponseTotal"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.GoogleLoginRequest": {
            "type": "object",
            "required": ["tokenId"],
            "properties": {
                "tokenId": {"type": "string"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"},
                "isFromGoogle": {"type": "boolean"},
                "tokenId": {"type": "string"}
            }
        },
        "dto.CreateAdRequest": {
            "type": "object",
            "required": ["address", "brand", "carName", "city", "color", "date", "mobileNum", "model", "picsUrl", "price", "technicalInfo", "userId", "year"],
            "properties": {
                "technicalInfo": {"type": "string"},
                "address": {"type": "string"},
                "mobileNum": {"type": "string"},
                "city": {"type": "string"},
                "carName": {"type": "string"},
                "picsUrl": {"type": "string"},
                "additionalInfo": {"type": "string"},
                "price": {"type": "number"},
                "date": {"type": "string"},
                "year": {"type": "integer"},
                "status": {"type": "integer"},
                "model": {"type": "string"},
                "videoUrl": {"type": "string"},
                "brand": {"type": "string"},
                "color": {"type": "string"},
                "distance": {"type": "integer"},
                "accidental": {"type": "boolean"},
                "userId": {"type": "integer"}
            }
        },
        "dto.CreateRateRequest": {
            "type": "object",
            "required": ["adId", "userId"],
            "properties": {
                "adId": {"type": "integer"},
                "userId": {"type": "integer"},
                "score": {"type": "integer"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {}
            }
        },
        "response.ResponseTotal": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AutoBazaar API",
	Description:      "Backend rao vặt ô tô: users, ads, rates, comments, admin.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
