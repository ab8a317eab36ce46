// Package http provides http transport for the readme proxy
package http

import (
	stdhttp "net/http"

	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/services/api/readme/domain"
	svc "trendboard/internal/services/api/readme/service"
)

// Register mounts the readme endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.ReadmeInput](r, "/", h.readme)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /readme Readme readmeGet
// @Summary Readme for a repository, raw and rendered
// @Tags Readme
// @Produce json
// @Param owner query string true "Repository owner"
// @Param repo query string true "Repository name"
// @Success 200 {object} domain.ReadmeOutput "ok"
// @Router /readme [get]
func (h *handlers) readme(r *stdhttp.Request, in domain.ReadmeInput) (any, error) {
	return h.svc.Readme(r.Context(), in)
}
