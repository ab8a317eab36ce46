package module

import (
	"context"

	"trendboard/internal/services/api/trends/domain"
	trendssvc "trendboard/internal/services/api/trends/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTrendsPort struct{ svc trendssvc.Service }

// Trending returns one page of trending repos
func (a adaptTrendsPort) Trending(ctx context.Context, in domain.TrendingInput) (domain.TrendingOutput, error) {
	return a.svc.Trending(ctx, in)
}

// Languages returns per-language aggregates for a date
func (a adaptTrendsPort) Languages(ctx context.Context, in domain.LanguagesInput) (domain.LanguagesOutput, error) {
	return a.svc.Languages(ctx, in)
}

// DateStats returns per-date import stats
func (a adaptTrendsPort) DateStats(ctx context.Context, in domain.DateStatsInput) (domain.DateStatsOutput, error) {
	return a.svc.DateStats(ctx, in)
}

// DBInfo reports dataset coverage
func (a adaptTrendsPort) DBInfo(ctx context.Context) (domain.DBInfoOutput, error) {
	return a.svc.DBInfo(ctx)
}
