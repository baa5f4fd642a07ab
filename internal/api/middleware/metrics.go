package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPRecorder приемник HTTP метрик
type HTTPRecorder interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware фиксирует количество и длительность запросов.
// В метку path попадает шаблон маршрута, а не фактический URL
func MetricsMiddleware(recorder HTTPRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			recorder.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
