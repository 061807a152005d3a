package http

import "net/http"

// NotFoundHandler returns a JSON 404 response for routes the router does
// not know.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
}
