// SPDX-License-Identifier: MIT

package openapi_server

import (
	"log"
	"net/http"
	"strconv"
	"time"
)

var debugLevel = 0

// Set the debug level of the request logging.
// If it is 0, no requests are logged
func SetDebugLevel(level int) {
	debugLevel = level
}

// statusRecorder remembers the status code written by the handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger logs and measures every request of the inner handler
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		inner.ServeHTTP(recorder, r)

		elapsed := time.Since(start)
		requestsTotal.WithLabelValues(name, strconv.Itoa(recorder.status)).Inc()
		requestDuration.WithLabelValues(name).Observe(elapsed.Seconds())

		if debugLevel >= 1 {
			log.Printf(
				"%s %s %s %d %s",
				r.Method,
				r.RequestURI,
				name,
				recorder.status,
				elapsed,
			)
		}
	})
}
