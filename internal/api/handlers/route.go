package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/platform/obs"
	"transit-directions-service/internal/ports"
	"transit-directions-service/internal/services"

	"go.uber.org/zap"
)

type RouteHandler struct {
	Provider ports.DirectionsProvider
	Now      func() time.Time
}

// Route returns normalized transit options between start_location and end_location.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := strings.TrimSpace(q.Get("start_location"))
	end := strings.TrimSpace(q.Get("end_location"))

	if start == "" {
		writeError(w, r, http.StatusBadRequest, "Start location is required")
		return
	}
	if end == "" {
		writeError(w, r, http.StatusBadRequest, "Missing required parameter: end_location")
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	route, err := services.FindRoute(r.Context(), h.Provider, start, end, now())
	if err != nil {
		writeServiceError(w, r, "find route failed", err)
		return
	}

	writeJSON(w, r, http.StatusOK, route)
}

// writeServiceError maps service failures onto client, upstream or internal errors.
func writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	log := zap.L().With(zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrInvalidLocationFormat):
		log.Info("rejected location")
		writeError(w, r, http.StatusBadRequest, invalidLocationMessage(err))
	case errors.Is(err, services.ErrMissingQuery):
		writeError(w, r, http.StatusBadRequest, "Missing required parameter: destination")
	case errors.Is(err, ports.ErrUpstreamUnavailable):
		log.Warn(msg)
		writeError(w, r, http.StatusBadGateway, "upstream service unavailable")
	default:
		log.Error(msg)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// invalidLocationMessage reports the offending parameter and its value,
// without the service-layer error prefixes.
func invalidLocationMessage(err error) string {
	var le *domain.InvalidLocationError
	if errors.As(err, &le) {
		return fmt.Sprintf("Invalid %s: %v", le.Param, le.Err)
	}
	return `Invalid location format, expected "lat,lng"`
}
