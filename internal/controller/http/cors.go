package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var (
	allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	allowedHeaders = []string{"Content-Type", "Authorization"}
)

// CORS - заголовки для запросов с Origin; preflight отвечает сам, 200 без тела
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: allowedMethods,
		AllowedHeaders: allowedHeaders,
	})
}

// Preflight - ставится перед CORS(). Запросам без Origin (curl, серверные клиенты)
// отдаёт те же разрешающие заголовки; OPTIONS, который не является preflight, завершает 200 без тела.
func Preflight(next http.Handler) http.Handler {
	methods := strings.Join(allowedMethods, ",")
	headers := strings.Join(allowedHeaders, ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Origin") == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") == "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
