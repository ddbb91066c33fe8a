package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORSMiddleware allows browser clients on any origin, matching the
// permissive defaults the frontend expects.
func CORSMiddleware(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(next)
}
