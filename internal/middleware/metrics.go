package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"hotelbooking/internal/metrics"
)

// MetricsMiddleware must be registered with router.Use so that the matched
// route is known when the request finishes.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.InFlightInc()
		defer metrics.InFlightDec()

		start := time.Now()
		sw := newStatusWriter(w)

		next.ServeHTTP(sw, r)

		metrics.ObserveRequest(r.Method, routeTemplate(r), sw.status, time.Since(start))
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}
