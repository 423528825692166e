package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"ulascansenturk/allergy-forecast/internal/db/forecastquery"
	"ulascansenturk/allergy-forecast/internal/service"
	"ulascansenturk/allergy-forecast/pkg/iqvia"
)

type ForecastHandler struct {
	forecastService service.ForecastService
	queryLog        forecastquery.Repository
	timeout         time.Duration
	router          http.Handler
}

// NewForecastHandler builds the API router. queryLog may be nil, in which
// case the query log route answers 404.
func NewForecastHandler(forecastService service.ForecastService, queryLog forecastquery.Repository, timeout time.Duration) *ForecastHandler {
	h := &ForecastHandler{
		forecastService: forecastService,
		queryLog:        queryLog,
		timeout:         timeout,
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", h.ReportHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/v1/forecast/{category}/{kind}", h.GetForecast).Methods(http.MethodGet)
	router.HandleFunc("/v1/queries/{zip}", h.GetLatestQuery).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// wrapped outside the router so unmatched routes are logged too
	h.router = requestLogger(router)
	return h
}

func (h *ForecastHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *ForecastHandler) ReportHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category, kind := vars["category"], vars["kind"]

	zipCode := r.URL.Query().Get("zip")
	if zipCode == "" {
		respondWithError(w, http.StatusBadRequest, "zip parameter 'zip' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	response, err := h.forecastService.GetForecast(ctx, category, kind, zipCode)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("zip_code", zipCode).Str("category", category).Str("kind", kind).Msg("failed to get forecast")
		}
		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, ForecastResponse{
		ZIPCode:  zipCode,
		Category: string(response.Category),
		Kind:     string(response.Kind),
		Cached:   response.Cached,
		Data:     response.Data,
	})
}

// GetLatestQuery returns the most recent query log entry for a ZIP code.
func (h *ForecastHandler) GetLatestQuery(w http.ResponseWriter, r *http.Request) {
	zipCode := mux.Vars(r)["zip"]
	if !iqvia.IsValidZIP(zipCode) {
		respondWithError(w, http.StatusBadRequest, (&iqvia.InvalidZIPError{ZIP: zipCode, Reason: "must be 5 digits"}).Error())
		return
	}

	if h.queryLog == nil {
		respondWithError(w, http.StatusNotFound, "query log is disabled")
		return
	}

	query, err := h.queryLog.GetRecentForecastQuery(zipCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(w, http.StatusNotFound, "no queries logged for ZIP code "+zipCode)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("zip_code", zipCode).Msg("failed to read query log")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, QueryResponse{
		ZIPCode:      query.ZIPCode,
		Category:     query.Category,
		Kind:         query.Kind,
		RequestCount: query.RequestCount,
		InvalidZIP:   query.InvalidZIP,
		CreatedAt:    query.CreatedAt,
	})
}

func statusForError(err error) int {
	var statusErr *iqvia.StatusError

	switch {
	case errors.Is(err, iqvia.ErrInvalidZIP), errors.Is(err, service.ErrEmptyZIP):
		return http.StatusBadRequest
	case errors.Is(err, iqvia.ErrUnsupportedForecast):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrShutdown):
		return http.StatusServiceUnavailable
	case errors.As(err, &statusErr):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
