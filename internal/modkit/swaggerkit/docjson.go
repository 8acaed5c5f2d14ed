package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"statcard/internal/platform/config"

	docs "statcard/internal/services/api/docs"
)

// docReader returns the generated swagger document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

const requestIDExample = "579f33bf50b1/abc-000001"

// errorSchema mirrors the error envelope written by the platform responder
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Standard error response",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

// defaults are added to every operation that does not declare the status itself
var defaults = map[string]map[string]any{
	"400": errorResponse("Bad Request", 400, 6, "username is a required field"),
	"500": errorResponse("Internal Server Error", 500, 1, "panic recovered"),
}

func errorResponse(status string, statusCode, code int, msg string) map[string]any {
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": statusCode,
					"status":      status,
					"code":        code,
					"error":       msg,
					"request_id":  requestIDExample,
				},
			},
		},
	}
}

// serveDocJSON serves the generated spec lifted to OAS 3.0.3 with the shared error responses filled in
func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	suffix := cfg.MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeVersion(spec)
		if _, ok := spec["servers"]; !ok {
			spec["servers"] = []any{map[string]any{"url": "/"}}
		}
		if suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		schemas := child(child(spec, "components"), "schemas")
		if _, ok := schemas["ErrorResponse"]; !ok {
			schemas["ErrorResponse"] = errorSchema
		}
		eachOperation(spec, func(op map[string]any) {
			resps := child(op, "responses")
			for code, resp := range defaults {
				if _, ok := resps[code]; !ok {
					resps[code] = resp
				}
			}
		})

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeVersion pins the document to 3.0.3; the bundled UI cannot render 3.1
func normalizeVersion(spec map[string]any) {
	delete(spec, "swagger")
	if v, ok := spec["openapi"].(string); ok && strings.HasPrefix(v, "3.0") {
		return
	}
	spec["openapi"] = "3.0.3"
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, _ := spec["paths"].(map[string]any)
	for _, p := range paths {
		item, _ := p.(map[string]any)
		for _, o := range item {
			if op, ok := o.(map[string]any); ok {
				fn(op)
			}
		}
	}
}
