package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type countriesResponse struct {
	Countries []*entities.Country  `json:"countries"`
	Stats     service.CatalogStats `json:"stats"`
}

type regionsResponse struct {
	Regions []string `json:"regions"`
}

// listCountries applies the optional q and region filters.
func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	countries, err := h.countries.Browse(query.Get("q"), query.Get("region"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, countriesResponse{
		Countries: countries,
		Stats:     service.Stats(countries),
	})
}

func (h *Handler) getCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.countries.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, country)
}

func (h *Handler) randomCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.countries.Random()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, country)
}

func (h *Handler) listRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.countries.Regions()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regionsResponse{Regions: regions})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countries.All()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.Stats(countries))
}

// writeError maps catalog errors to status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrCatalogNotReady):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "catalog not ready"})
	case errors.Is(err, repository.ErrCountryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "country not found"})
	default:
		h.logger.Error("catalog api error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
