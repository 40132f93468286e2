// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/health": {"get": {"tags": ["system"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Local store unavailable"}}}},
        "/welcome": {"get": {"tags": ["survey"], "summary": "Welcome text", "responses": {"200": {"description": "OK"}}}},
        "/questions": {"get": {"tags": ["survey"], "summary": "Question catalog", "responses": {"200": {"description": "OK"}}}},
        "/personnel": {"get": {"tags": ["survey"], "summary": "Search the roster", "parameters": [{"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/sessions": {"post": {"tags": ["survey"], "summary": "Start a survey session", "responses": {"201": {"description": "Created"}}}},
        "/sessions/{id}": {"get": {"tags": ["survey"], "summary": "Session state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/sessions/{id}/personnel": {"put": {"tags": ["survey"], "summary": "Select personnel", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unknown personnel"}}}},
        "/sessions/{id}/ratings": {"put": {"tags": ["survey"], "summary": "Record ratings for the current step", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid rating"}}}},
        "/sessions/{id}/next": {"post": {"tags": ["survey"], "summary": "Advance or submit", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Advanced"}, "201": {"description": "Submitted"}, "422": {"description": "Step incomplete"}}}},
        "/sessions/{id}/back": {"post": {"tags": ["survey"], "summary": "Go back one step", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/admin/login": {"post": {"tags": ["admin"], "summary": "Admin login", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid password"}}}},
        "/admin/data": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Full application data", "responses": {"200": {"description": "OK"}}}},
        "/admin/personnel": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "List personnel", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Add personnel, one name per line", "responses": {"200": {"description": "OK"}, "400": {"description": "Empty roster"}}}
        },
        "/admin/personnel/{name}": {"delete": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Remove personnel", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}},
        "/admin/weights": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Update section weights", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid weight"}}}},
        "/admin/welcome": {"put": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Update welcome text", "responses": {"200": {"description": "OK"}}}},
        "/admin/responses": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "List responses", "responses": {"200": {"description": "OK"}}}},
        "/admin/sync": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["admin"], "summary": "Fetch and merge remote data", "responses": {"200": {"description": "OK"}, "502": {"description": "Remote unavailable"}}}},
        "/admin/reports/summary": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Per-person summary", "responses": {"200": {"description": "OK"}}}},
        "/admin/reports/matrix": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Per-aircraft matrix", "responses": {"200": {"description": "OK"}}}},
        "/admin/reports/export/xlsx": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Download the matrix workbook", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "OK"}}}},
        "/admin/reports/export/doc": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Download the summary document", "produces": ["application/msword"], "responses": {"200": {"description": "OK"}}}},
        "/admin/reports/archive": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Store an export in object storage", "parameters": [{"type": "string", "name": "kind", "in": "query"}], "responses": {"201": {"description": "Created"}}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Workload Survey API",
	Description:      "Personnel workload survey: questionnaire sessions, roster administration and scored reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
