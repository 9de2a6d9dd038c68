package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>tenant-api — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "tenant-api", "version": "v0.1.0" },
  "paths": {
    "/": {
      "get": { "summary": "Service banner", "responses": { "200": { "description": "service is running" } } }
    },
    "/test": {
      "get": { "summary": "Connectivity self test", "responses": { "200": { "description": "backend and database status" } } }
    },
    "/schema": {
      "get": { "summary": "Entity schemas keyed by collection name", "responses": { "200": { "description": "schema catalog" } } }
    },
    "/api/{collection}": {
      "get": {
        "summary": "List records from an allow-listed collection",
        "parameters": [
          { "name": "collection", "in": "path", "required": true, "schema": {"type":"string","enum":["tenant","owner","property","lease","sale","expense","document"]} },
          { "name": "limit", "in": "query", "required": false, "schema": {"type":"integer","minimum":1,"default":25} }
        ],
        "responses": { "200": { "description": "items returned" }, "400": { "description": "invalid limit" }, "404": { "description": "collection not allow-listed" } }
      },
      "post": {
        "summary": "Create a record in an allow-listed collection",
        "parameters": [
          { "name": "collection", "in": "path", "required": true, "schema": {"type":"string"} }
        ],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object"} } } },
        "responses": { "200": { "description": "record created" }, "400": { "description": "malformed body" }, "404": { "description": "collection not allow-listed" } }
      }
    },
    "/api/upload": {
      "post": {
        "summary": "Upload a file and create its document record",
        "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"},"title":{"type":"string"},"tags":{"type":"string"},"related_type":{"type":"string"},"related_id":{"type":"string"}},"required":["file"]} } } },
        "responses": { "200": { "description": "document created, preview returned" }, "400": { "description": "file part missing" }, "413": { "description": "file too large" } }
      }
    },
    "/api/files/{key}": {
      "get": {
        "summary": "Download a stored file, or presign a URL with ?presign=1",
        "parameters": [ { "name": "key", "in": "path", "required": true, "schema": {"type":"string"} } ],
        "responses": { "200": { "description": "file bytes or presigned url" }, "404": { "description": "unknown key" } }
      }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metric exposition" } } } }
  }
}`
