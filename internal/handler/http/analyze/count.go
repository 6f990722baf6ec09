package analyze

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"textstats/internal/handler/http/respond"
	"textstats/internal/observability/logging"
	analyzeUC "textstats/internal/usecase/analyze"
)

// CountHandler serves POST /tools/{op}: it validates the argument, invokes
// the named counting operation, and returns the count as a decimal text
// payload.
type CountHandler struct {
	Svc analyzeUC.Service
}

func (h CountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op := r.PathValue("op")

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

	n, err := h.Svc.Count(r.Context(), op, text, req.Locale)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, analyzeUC.ErrUnknownOperation) {
			code = http.StatusNotFound
			logger := logging.WithOperation(logging.FromContext(r.Context()), op)
			logger.Warn("unknown operation requested")
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, CountResponse{
		Operation: op,
		Locale:    h.Svc.Locale(req.Locale),
		Result:    strconv.Itoa(n),
	})
}
