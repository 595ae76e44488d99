package handlers

import (
	"net/http"
	"strings"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/services"
)

type LocationsHandler struct {
	Finder *services.PlaceFinder
}

// Locations searches places matching destination, optionally near currentLocation.
func (h *LocationsHandler) Locations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	destination := strings.TrimSpace(q.Get("destination"))
	if destination == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required parameter: destination")
		return
	}

	places, err := h.Finder.Find(r.Context(), destination, q.Get("currentLocation"))
	if err != nil {
		writeServiceError(w, r, "find places failed", err)
		return
	}

	if places == nil {
		places = []domain.Place{}
	}
	writeJSON(w, r, http.StatusOK, places)
}
