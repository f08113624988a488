package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestIDFrom returns the id assigned by RequestIDMiddleware.
func RequestIDFrom(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
