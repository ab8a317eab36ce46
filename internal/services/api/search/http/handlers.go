// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/services/api/search/domain"
	svc "trendboard/internal/services/api/search/service"
)

// Register mounts the search endpoint on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.SearchInput](r, "/", h.search)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /search Search searchRepos
// @Summary Search repositories
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Param searchField query string false "all name description owner"
// @Param language query string false "Exact language filter"
// @Param category query string false "all python typescript javascript jupyter vue"
// @Param period query string false "daily weekly monthly"
// @Param minStars query int false "Minimum star count"
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page, max 100"
// @Success 200 {object} domain.SearchOutput "ok"
// @Router /search [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
