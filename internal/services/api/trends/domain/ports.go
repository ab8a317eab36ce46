package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Trending(ctx context.Context, in TrendingInput) (TrendingOutput, error)
	Languages(ctx context.Context, in LanguagesInput) (LanguagesOutput, error)
	DateStats(ctx context.Context, in DateStatsInput) (DateStatsOutput, error)
	DBInfo(ctx context.Context) (DBInfoOutput, error)
}
