package analyze

import (
	"net/http"

	"textstats/internal/handler/http/respond"
	analyzeUC "textstats/internal/usecase/analyze"
)

// ListHandler serves GET /tools with the available operation names, so
// agents can discover the tool table without out-of-band documentation.
type ListHandler struct {
	Svc analyzeUC.Service
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ops := analyzeUC.Operations()
	tools := make([]ToolInfo, 0, len(ops))
	for _, op := range ops {
		tools = append(tools, ToolInfo{
			Name:        op,
			Description: analyzeUC.Descriptions[op],
		})
	}
	respond.JSON(w, http.StatusOK, ToolListResponse{Tools: tools})
}
