// SPDX-License-Identifier: MIT

package restapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger attaches a request id to every request and logs method, uri and
// duration. The id is echoed in the X-Request-Id header so clients can
// correlate their animation steps with server logs.
func Logger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestId)

		inner.ServeHTTP(w, r)

		log.Printf(
			"%s %s %s %s %s",
			requestId,
			r.Method,
			r.RequestURI,
			name,
			time.Since(start),
		)
	})
}
