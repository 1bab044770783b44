// Package docs содержит документ OpenAPI, собранный swag по аннотациям
// обработчиков internal/app.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "API index",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.Index"}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Total launches, landings and reflights",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Launch statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/stats/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.HealthResponse"}}
                }
            }
        },
        "/upcoming": {
            "get": {
                "description": "Upcoming launches that passed schema validation with counters",
                "produces": ["application/json"],
                "tags": ["upcoming"],
                "summary": "Upcoming launches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/upcoming/stats": {
            "get": {
                "description": "Counts by vehicle, launch site, mission status and mission type",
                "produces": ["application/json"],
                "tags": ["upcoming"],
                "summary": "Upcoming launches summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/upcoming/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["upcoming"],
                "summary": "Upcoming launch by id",
                "parameters": [
                    {"type": "integer", "description": "Launch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/upcoming/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.HealthResponse"}}
                }
            }
        },
        "/launches": {
            "get": {
                "description": "Past launches, optionally sorted by date and time",
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "Past launches",
                "parameters": [
                    {"type": "string", "description": "Sort field ('datetime')", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Sort order ('asc' or 'desc')", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/launches/{link}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["launches"],
                "summary": "Launch details",
                "parameters": [
                    {"type": "string", "description": "Launch link", "name": "link", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/launches/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.HealthResponse"}}
                }
            }
        },
        "/dragon": {
            "get": {
                "description": "Latest telemetry frame with provider keys",
                "produces": ["application/json"],
                "tags": ["dragon"],
                "summary": "Dragon telemetry",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/dragon/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dragon"],
                "summary": "Dragon telemetry summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Envelope"}}
                }
            }
        },
        "/dragon/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/app.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "app.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "app.Index": {
            "type": "object",
            "properties": {
                "documentation": {"type": "object", "additionalProperties": {"type": "string"}},
                "endpoints": {"type": "object"},
                "message": {"type": "string"},
                "mode": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "envelope.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo содержит экспортируемые сведения о документе
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SpaceX API",
	Description:      "Proxy for SpaceX launch statistics, launches and Dragon telemetry.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// ReadDoc возвращает документ с подставленными сведениями
func ReadDoc() (string, error) {
	return swag.ReadDoc(SwaggerInfo.InstanceName())
}
