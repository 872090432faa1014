package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/roadready/roadready-backend/internal/states"
)

// GET /api/states
func ListStatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"states": states.List()})
	}
}

// GET /api/states/{code}
func GetStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(chi.URLParam(r, "code"))
		req, ok := states.ByCode(code)
		if !ok {
			writeErr(w, http.StatusNotFound, "State not found")
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

// GET /api/states/{code}/locations
func StateLocationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(chi.URLParam(r, "code"))
		locs, ok := states.LocationsByCode(code)
		if !ok {
			writeErr(w, http.StatusNotFound, "State not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"state": code, "locations": locs})
	}
}
