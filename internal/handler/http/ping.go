package http

import (
	"net/http"
)

// ping is the reachability probe used by clients to detect connectivity.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}
