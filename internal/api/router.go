package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter registers every endpoint of h
func NewRouter(h *Handler, log logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, logRequests(log))

	r.HandleFunc("/v1/safe-spend", h.SafeSpend).Methods(http.MethodPost)
	r.HandleFunc("/v1/health-score", h.HealthScore).Methods(http.MethodPost)
	r.HandleFunc("/v1/health-scores", h.HealthScores).Methods(http.MethodPost)
	r.HandleFunc("/v1/retirement", h.Retirement).Methods(http.MethodPost)
	r.HandleFunc("/v1/compound-interest", h.CompoundInterest).Methods(http.MethodPost)
	r.HandleFunc("/v1/tax-estimate", h.TaxEstimate).Methods(http.MethodPost)
	r.HandleFunc("/v1/asset-allocation", h.AssetAllocation).Methods(http.MethodPost)
	r.HandleFunc("/v1/what-if", h.WhatIf).Methods(http.MethodPost)
	r.HandleFunc("/v1/investment-recommendations", h.InvestmentRecommendations).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}
