package analyze

import (
	"net/http"

	analyzeUC "textstats/internal/usecase/analyze"
)

// Register wires the analysis endpoints onto mux.
func Register(mux *http.ServeMux, svc analyzeUC.Service) {
	mux.Handle("GET /tools", ListHandler{Svc: svc})
	mux.Handle("POST /tools/{op}", CountHandler{Svc: svc})
	mux.Handle("POST /analyze", AnalyzeHandler{Svc: svc})
}
