package middleware

import (
	"net/http"
	"time"

	"zoo-records/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// HTTPObserver recibe una observación por request (métricas). Puede ser nil.
type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// AccessLog loguea cada request y lo reporta al observer con el patrón de ruta de chi
// (p.ej. /animals/{id}), no con el path crudo.
func AccessLog(log logger.Logger, obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			if obs != nil {
				obs.ObserveHTTP(route, r.Method, status, elapsed)
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": float64(elapsed.Microseconds()) / 1000,
				"request_id":  GetRequestID(r.Context()),
			}
			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
