// Package swagger registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/serve.go -o docs/swagger` after changing handler annotations.
package swagger

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/summary": {
            "get": {
                "description": "Number of persisted maps, monsters and items per type.",
                "produces": ["application/json"],
                "tags": ["corpus"],
                "summary": "Corpus Summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/persist.Counts"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/summary/refresh": {
            "post": {
                "tags": ["corpus"],
                "summary": "Refresh Aggregates",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/maps/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["corpus"],
                "summary": "Get Map",
                "parameters": [{"type": "integer", "description": "Map ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Invalid ID"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/monsters/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["corpus"],
                "summary": "Get Monster",
                "parameters": [{"type": "integer", "description": "Monster ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Invalid ID"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/items/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["corpus"],
                "summary": "Get Item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Invalid ID"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/items/{id}/droppers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["corpus"],
                "summary": "Item Droppers",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/corpus.Dropper"}}},
                    "400": {"description": "Invalid ID"}
                }
            }
        },
        "/inspect/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Inspect Items",
                "parameters": [{"type": "string", "description": "Comma separated item IDs", "name": "ids", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Result"}}},
                    "400": {"description": "Invalid IDs"},
                    "502": {"description": "Backend Error"}
                }
            }
        },
        "/inspect/items/{id}": {
            "get": {
                "description": "Presence in every backend and the corpus, plus relational/metadata field mismatches.",
                "produces": ["application/json"],
                "tags": ["inspect"],
                "summary": "Inspect Item",
                "parameters": [{"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/reconcile.Result"}},
                    "400": {"description": "Invalid ID"},
                    "502": {"description": "Backend Error"}
                }
            }
        },
        "/integrity": {
            "get": {
                "description": "Checks the published bucket structure and the relational backend schema.",
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {"200": {"description": "Combined Report", "schema": {"type": "object"}}}
            }
        },
        "/integrity/structure": {
            "get": {
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Structure",
                "parameters": [{"type": "boolean", "description": "Fix missing folders", "name": "fix", "in": "query"}],
                "responses": {
                    "200": {"description": "Structure Report", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/integrity/schema": {
            "get": {
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Relational Schema",
                "responses": {
                    "200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/integrity.SchemaReport"}},
                    "500": {"description": "Internal Server Error"},
                    "503": {"description": "Backend Not Configured"}
                }
            }
        }
    },
    "definitions": {
        "corpus.Dropper": {
            "type": "object",
            "properties": {
                "monsterId": {"type": "integer"},
                "name": {"type": "string"},
                "chance": {"type": "number"}
            }
        },
        "reconcile.Result": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "db_present": {"type": "boolean"},
                "api_present": {"type": "boolean"},
                "tree_present": {"type": "boolean"},
                "corpus_present": {"type": "boolean"},
                "mismatch": {"type": "array", "items": {"type": "string"}},
                "metadata": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "persist.Counts": {
            "type": "object",
            "properties": {
                "maps": {"type": "integer"},
                "monsters": {"type": "integer"},
                "items": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "integrity.SchemaReport": {
            "type": "object",
            "properties": {
                "driver": {"type": "string"},
                "matched": {"type": "boolean"},
                "missing": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Corpus Builder API",
	Description:      "Read-only API over the reconciled maps, monsters and items corpus.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
