package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/businessthis/finplan/internal/cache"
	"github.com/businessthis/finplan/internal/calculation"
	"github.com/businessthis/finplan/internal/domain"
)

const maxBodyBytes = 1 << 20

// Handler exposes the planning engine over HTTP. Successful responses are
// memoized by operation and request body.
type Handler struct {
	engine *calculation.PlanningEngine
	cache  *cache.LRUCache[[]byte]
	log    logrus.FieldLogger
}

// NewHandler creates a handler. A nil cache disables memoization.
func NewHandler(engine *calculation.PlanningEngine, responses *cache.LRUCache[[]byte], log logrus.FieldLogger) *Handler {
	if responses == nil {
		responses = cache.NewLRUCache[[]byte](0, 0)
	}
	return &Handler{engine: engine, cache: responses, log: log}
}

// computeFunc decodes body and runs one engine operation
type computeFunc func(body []byte) (any, error)

// serve reads the body, answers from the cache when possible and otherwise
// computes, encodes and stores the result.
func (h *Handler) serve(w http.ResponseWriter, r *http.Request, operation string, compute computeFunc) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(body) > maxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}

	key := cache.Key(operation, bytes.TrimSpace(body))
	if cached, ok := h.cache.Get(key); ok {
		w.Header().Set("X-Cache", "HIT")
		writeJSON(w, cached)
		return
	}

	result, err := compute(body)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			requestLogger(r, h.log).WithError(err).Errorf("%s failed", operation)
			writeError(w, status, "internal error")
			return
		}
		writeError(w, status, err.Error())
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		requestLogger(r, h.log).WithError(err).Errorf("%s: failed to encode response", operation)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.cache.Set(key, data)
	w.Header().Set("X-Cache", "MISS")
	writeJSON(w, data)
}

func writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decode parses a JSON body strictly. An empty body decodes as {} so every
// optional field takes its default.
func decode(body []byte, v any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errBadRequest, err.Error())
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON object", errBadRequest)
	}
	return nil
}

// SafeSpend handles POST /v1/safe-spend
func (h *Handler) SafeSpend(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "safe-spend", func(body []byte) (any, error) {
		var req SafeSpendRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		return h.engine.ComputeSafeSpendForProfile(&req.Profile, req.Goals, req.SavingsGoal, req.MonthsForGoal)
	})
}

// HealthScore handles POST /v1/health-score. The body is the profile itself.
func (h *Handler) HealthScore(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "health-score", func(body []byte) (any, error) {
		var profile domain.FinancialProfile
		if err := decode(body, &profile); err != nil {
			return nil, err
		}
		return h.engine.ComputeHealthScore(&profile)
	})
}

// HealthScores handles POST /v1/health-scores, scoring every profile concurrently
func (h *Handler) HealthScores(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "health-scores", func(body []byte) (any, error) {
		var req HealthScoresRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		profiles := make([]*domain.FinancialProfile, len(req.Profiles))
		for i := range req.Profiles {
			profiles[i] = &req.Profiles[i]
		}
		return h.engine.ComputeHealthScores(r.Context(), profiles)
	})
}

// Retirement handles POST /v1/retirement
func (h *Handler) Retirement(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "retirement", func(body []byte) (any, error) {
		var req RetirementRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		return h.engine.ComputeRetirementNeeds(
			intOr(req.CurrentAge, defaultAge),
			intOr(req.RetirementAge, defaultRetirementAge),
			req.CurrentSavings,
			decimalOr(req.MonthlyIncome, defaultMonthlyIncome),
			req.DesiredRetirementIncome,
		)
	})
}

// CompoundInterest handles POST /v1/compound-interest
func (h *Handler) CompoundInterest(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "compound-interest", func(body []byte) (any, error) {
		var req CompoundInterestRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		rate := decimalOr(req.AnnualRate, defaultAnnualRate)
		years := intOr(req.Years, defaultYears)

		res, err := h.engine.ComputeCompoundInterest(req.Principal, req.MonthlyContribution, rate, years)
		if err != nil {
			return nil, err
		}
		resp := &CompoundInterestResponse{GrowthResult: *res}
		if req.IncludeSchedule {
			if resp.Schedule, err = h.engine.ComputeGrowthSchedule(req.Principal, req.MonthlyContribution, rate, years); err != nil {
				return nil, err
			}
		}
		return resp, nil
	})
}

// TaxEstimate handles POST /v1/tax-estimate
func (h *Handler) TaxEstimate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "tax-estimate", func(body []byte) (any, error) {
		var req TaxEstimateRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		return h.engine.ComputeTaxEstimate(decimalOr(req.Income, defaultTaxableIncome), filingOr(req.FilingStatus), req.Deductions, req.Credits)
	})
}

// AssetAllocation handles POST /v1/asset-allocation
func (h *Handler) AssetAllocation(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "asset-allocation", func(body []byte) (any, error) {
		var req AllocationRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		return h.engine.ComputeAssetAllocation(intOr(req.Age, defaultAge), riskOr(req.RiskTolerance), decimalOr(req.InvestmentAmount, defaultInvestmentAmount))
	})
}

// WhatIf handles POST /v1/what-if
func (h *Handler) WhatIf(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "what-if", func(body []byte) (any, error) {
		var req WhatIfRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		return h.engine.ComputeWhatIf(decimalOr(req.BaseIncome, defaultMonthlyIncome), decimalOr(req.BaseExpenses, defaultMonthlyExpenses), req.Scenarios)
	})
}

// InvestmentRecommendations handles POST /v1/investment-recommendations
func (h *Handler) InvestmentRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "investment-recommendations", func(body []byte) (any, error) {
		var req InvestmentRequest
		if err := decode(body, &req); err != nil {
			return nil, err
		}
		income := decimalOr(req.AnnualIncome, defaultMonthlyIncome.Mul(decimal.NewFromInt(12)))
		return h.engine.ComputeInvestmentPlan(intOr(req.Age, defaultAge), income, riskOr(req.RiskTolerance), req.CurrentInvestments)
	})
}

// HealthStatus is the body of GET /healthz
type HealthStatus struct {
	Status       string      `json:"status"`
	RulesVersion string      `json:"rules_version"`
	TaxYear      int         `json:"tax_year"`
	Cache        cache.Stats `json:"cache"`
}

// Healthz handles GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	data, err := json.Marshal(HealthStatus{
		Status:       "ok",
		RulesVersion: h.engine.Rules.Version,
		TaxYear:      h.engine.Rules.TaxYear,
		Cache:        h.cache.Stats(),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, data)
}
