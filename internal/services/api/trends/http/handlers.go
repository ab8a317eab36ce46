// Package http provides http transport for trends
package http

import (
	stdhttp "net/http"

	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/services/api/trends/domain"
	svc "trendboard/internal/services/api/trends/service"
)

// Register mounts the trends endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one day of trending repos
	httpkit.GetQuery[domain.TrendingInput](r, "/trending", h.trending)

	// per-language aggregates for a date
	httpkit.GetQuery[domain.LanguagesInput](r, "/languages", h.languages)

	// per-date import stats
	httpkit.GetQuery[domain.DateStatsInput](r, "/date-stats", h.dateStats)

	// dataset coverage summary
	httpkit.Get(r, "/db-info", h.dbInfo)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /trending Trends trendsTrending
// @Summary Trending repositories for a date
// @Tags Trends
// @Produce json
// @Param date query string false "Snapshot date YYYY-MM-DD"
// @Param category query string false "all python typescript javascript jupyter vue"
// @Param period query string false "daily weekly monthly"
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page, max 100"
// @Param language query string false "Exact language filter"
// @Success 200 {object} domain.TrendingOutput "ok"
// @Router /trending [get]
func (h *handlers) trending(r *stdhttp.Request, in domain.TrendingInput) (any, error) {
	return h.svc.Trending(r.Context(), in)
}

// swagger:route GET /languages Trends trendsLanguages
// @Summary Language stats for a date
// @Tags Trends
// @Produce json
// @Param date query string false "Snapshot date YYYY-MM-DD"
// @Success 200 {object} domain.LanguagesOutput "ok"
// @Router /languages [get]
func (h *handlers) languages(r *stdhttp.Request, in domain.LanguagesInput) (any, error) {
	return h.svc.Languages(r.Context(), in)
}

// swagger:route GET /date-stats Trends trendsDateStats
// @Summary Import stats grouped by date
// @Tags Trends
// @Produce json
// @Param type query string false "basic detailed monthly simple"
// @Param limit query int false "Max dates returned"
// @Success 200 {object} domain.DateStatsOutput "ok"
// @Router /date-stats [get]
func (h *handlers) dateStats(r *stdhttp.Request, in domain.DateStatsInput) (any, error) {
	return h.svc.DateStats(r.Context(), in)
}

// swagger:route GET /db-info Trends trendsDBInfo
// @Summary Dataset coverage summary
// @Tags Trends
// @Produce json
// @Success 200 {object} domain.DBInfoOutput "ok"
// @Router /db-info [get]
func (h *handlers) dbInfo(r *stdhttp.Request) (any, error) {
	return h.svc.DBInfo(r.Context())
}
