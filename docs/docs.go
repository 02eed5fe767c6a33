// Package docs registers the OpenAPI document served at /swagger.
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
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/token": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue a bearer token",
                "consumes": ["application/x-www-form-urlencoded", "application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents": {
            "get": {
                "tags": ["documents"],
                "summary": "List documents",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DocumentListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "tags": ["documents"],
                "summary": "Upload a document",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "file", "description": "pdf, docx, csv or txt", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Document"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/{id}/content": {
            "get": {
                "tags": ["documents"],
                "summary": "Extracted document text",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/{id}/process": {
            "post": {
                "tags": ["documents"],
                "summary": "Process a document",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ProcessResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents/{id}/quiz": {
            "get": {
                "tags": ["study"],
                "summary": "Generate a quiz",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 5, "description": "1..20", "name": "num_questions", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.QuizQuestion"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/flashcards/{id}/review": {
            "post": {
                "tags": ["flashcards"],
                "summary": "Record a flashcard review",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "review", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.reviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/folders": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["folders"],
                "summary": "Create a folder",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "folder", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createFolderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Folder"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handler.errorEnvelope"}, "request_id": {"type": "string"}}
        },
        "handler.reviewRequest": {
            "type": "object",
            "properties": {"correct": {"type": "boolean"}}
        },
        "handler.createFolderRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "model.Document": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "storage_path": {"type": "string"},
                "size": {"type": "integer"},
                "content_type": {"type": "string"},
                "upload_date": {"type": "string"},
                "processed": {"type": "boolean"}
            }
        },
        "model.Folder": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "user_id": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "model.QuizQuestion": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correct_index": {"type": "integer"},
                "explanation": {"type": "string"}
            }
        },
        "model.Token": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "token_type": {"type": "string"}}
        },
        "service.DocumentListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Document"}},
                "total": {"type": "integer"}
            }
        },
        "service.ProcessResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "concepts_extracted": {"type": "integer"},
                "flashcards_generated": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document Tutor API",
	Description:      "Upload study documents, derive concepts and flashcards, review them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
