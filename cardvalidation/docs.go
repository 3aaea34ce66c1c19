package cardvalidation

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static/openapi.json static/swagger.html
var static embed.FS

// appendDocsRoutes serves the OpenAPI document and a Swagger UI page that
// loads it. Both are mounted in development only.
func appendDocsRoutes(r chi.Router) {
	r.Get("/swagger/v1/swagger.json", serveStatic("static/openapi.json", "application/json"))
	r.Get("/swagger", serveStatic("static/swagger.html", "text/html; charset=utf-8"))
}

func serveStatic(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := static.ReadFile(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}
