package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vpricescan/vpricego/internal/scan"
	"github.com/vpricescan/vpricego/internal/store"
)

// AnalyzeRequest is the valuation request payload
type AnalyzeRequest struct {
	RawText     string   `json:"raw_text"`
	ManualPrice *float64 `json:"manual_price"`
}

// analyzeSpecs runs a full scan: valuation, save, history refresh. The
// response carries the fresh result; a failed save never blocks it.
func (r *Router) analyzeSpecs(w http.ResponseWriter, req *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(body.RawText) == "" {
		respondError(w, http.StatusBadRequest, "raw_text is required")
		return
	}

	result, err := r.session.Submit(req.Context(), body.RawText, body.ManualPrice)
	if err != nil {
		if errors.Is(err, scan.ErrValuationUnavailable) {
			respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// listHistory returns the most recent scans, newest first.
func (r *Router) listHistory(w http.ResponseWriter, req *http.Request) {
	limit := store.DefaultRecentLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	respondJSON(w, http.StatusOK, r.scans.ListRecent(req.Context(), limit))
}

// getScanResult reopens a historical scan as a reconstructed result view.
func (r *Router) getScanResult(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	rec, ok := r.scans.Get(req.Context(), id)
	if !ok {
		respondError(w, http.StatusNotFound, "Scan not found")
		return
	}

	respondJSON(w, http.StatusOK, r.session.Select(rec))
}

// deleteScan removes one record; the outcome is reported, never thrown.
func (r *Router) deleteScan(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	ok := r.session.DeleteOne(req.Context(), id)
	respondJSON(w, http.StatusOK, map[string]bool{"success": ok})
}

// clearHistory removes every record, no filter.
func (r *Router) clearHistory(w http.ResponseWriter, req *http.Request) {
	ok := r.session.DeleteAll(req.Context())
	respondJSON(w, http.StatusOK, map[string]bool{"success": ok})
}
