package analyze

import (
	"encoding/json"
	"fmt"
	"net/http"

	"textstats/internal/handler/http/respond"
	analyzeUC "textstats/internal/usecase/analyze"
)

// AnalyzeHandler serves POST /analyze: all five counts in one response.
// This endpoint is for embedding hosts; the tool table for external agents
// stays limited to the single-count operations.
type AnalyzeHandler struct {
	Svc analyzeUC.Service
}

func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	text, err := req.textString()
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	res := h.Svc.Analyze(r.Context(), text, req.Locale)
	respond.JSON(w, http.StatusOK, AnalyzeResponse{
		Locale: h.Svc.Locale(req.Locale),
		Result: res,
	})
}
