package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vpricescan/vpricego/internal/scan"
	"github.com/vpricescan/vpricego/internal/store"
)

// Router wraps the mux router, the record store and the scan session
type Router struct {
	*mux.Router
	scans   *store.Scans
	session *scan.Session
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(scans *store.Scans, session *scan.Session, frontendDir string) *Router {
	r := &Router{
		Router:  mux.NewRouter(),
		scans:   scans,
		session: session,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Valuation
	r.HandleFunc("/analyze/specs", r.analyzeSpecs).Methods("POST")

	// History routes
	history := r.PathPrefix("/api/history").Subrouter()
	history.HandleFunc("", r.listHistory).Methods("GET")
	history.HandleFunc("", r.clearHistory).Methods("DELETE")
	history.HandleFunc("/{id}", r.deleteScan).Methods("DELETE")
	history.HandleFunc("/{id}/result", r.getScanResult).Methods("GET")

	// Static frontend
	if frontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(frontendDir)))
	}

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "online",
		"system": "V-Price Scanner",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
