// Package model exposes the projection engine over HTTP for the external
// dashboard collaborator. Handlers are plain net/http: JSON request/response
// structs, permissive CORS, one handler per operation.
package model

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"revenue_model/pkg/core/analysis"
	coremodel "revenue_model/pkg/core/model"
	"revenue_model/pkg/core/params"
)

var log = zap.NewNop()

// InitHandler wires the package logger. Safe to skip; handlers then stay
// silent.
func InitHandler(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Register attaches all model endpoints to the given mux.
func Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/model/projection", HandleProjection)
	mux.HandleFunc("/api/model/tco", HandleTCO)
	mux.HandleFunc("/api/model/revenue", HandleRevenue)
	mux.HandleFunc("/api/model/breakeven", HandleBreakEven)
	mux.HandleFunc("/api/model/recommendations", HandleRecommendations)
	mux.HandleFunc("/api/model/sensitivity", HandleSensitivity)
}

// cors sets permissive headers and answers preflight. Returns true when the
// request was a preflight and is already handled.
func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// decodeBody decodes a request body whose optional "bundle" overlays the
// defaults. dst must already contain the default-initialized request struct.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", zap.Error(err))
	}
}

type projectionRequest struct {
	Bundle  *params.Bundle `json:"bundle"`
	Periods int            `json:"periods"`
}

// HandleProjection runs the partnership-variant projection and returns the
// nested table document.
func HandleProjection(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := projectionRequest{Bundle: &def, Periods: 24}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := coremodel.New(*req.Bundle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table, err := m.RunProjection(req.Periods)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Info("projection run",
		zap.String("run_id", table.RunID),
		zap.Int("periods", req.Periods),
		zap.Bool("degenerate", table.Degenerate))
	writeJSON(w, table)
}

type bundleRequest struct {
	Bundle *params.Bundle `json:"bundle"`
}

// HandleTCO returns the vehicle cost schedule.
func HandleTCO(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := bundleRequest{Bundle: &def}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := coremodel.New(*req.Bundle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := m.CalculateTCO()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

type revenueRequest struct {
	Bundle *params.Bundle `json:"bundle"`
	Months int            `json:"months"`
}

// HandleRevenue returns the vehicle variant's aggregate revenue projection.
func HandleRevenue(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := revenueRequest{Bundle: &def, Months: 60}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := coremodel.New(*req.Bundle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := m.CalculateRevenueStreams(req.Months)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

type breakEvenResponse struct {
	Profit    *analysis.ProfitReport    `json:"profit"`
	BreakEven *analysis.BreakEvenReport `json:"break_even"`
}

// HandleBreakEven returns net profit, ROI and break-even timing.
func HandleBreakEven(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := bundleRequest{Bundle: &def}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := coremodel.New(*req.Bundle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	profit, err := analysis.NetProfit(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	be, err := analysis.BreakEven(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, breakEvenResponse{Profit: profit, BreakEven: be})
}

// HandleRecommendations returns the ordered advisory messages.
func HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := bundleRequest{Bundle: &def}
	if !decodeBody(w, r, &req) {
		return
	}
	m, err := coremodel.New(*req.Bundle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	recs, err := analysis.Recommendations(m)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string][]string{"recommendations": recs})
}

type sensitivityRequest struct {
	Bundle  *params.Bundle `json:"bundle"`
	Path    string         `json:"path"`
	Values  []float64      `json:"values"`
	Horizon int            `json:"horizon"`
}

// HandleSensitivity sweeps one parameter across the candidate values.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	def := params.Default()
	req := sensitivityRequest{Bundle: &def}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Path == "" {
		http.Error(w, "path: required", http.StatusBadRequest)
		return
	}
	if len(req.Values) == 0 {
		http.Error(w, "values: at least one candidate value required", http.StatusBadRequest)
		return
	}
	points := analysis.Sensitivity(*req.Bundle, req.Path, req.Values, req.Horizon)
	log.Info("sensitivity sweep",
		zap.String("path", req.Path),
		zap.Int("points", len(points)))
	writeJSON(w, map[string][]analysis.Point{"points": points})
}
