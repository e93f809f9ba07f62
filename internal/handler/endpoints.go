package handler

import (
	_ "embed"
	"net/http"
)

// endpointsJSON is the static descriptor of every available route,
// compiled into the binary so GET /api never touches the filesystem.
//
//go:embed endpoints.json
var endpointsJSON []byte

// HandleEndpoints serves GET /api.
func HandleEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(endpointsJSON)
}
