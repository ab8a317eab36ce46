// Package service contains the trending query workflows
package service

import (
	"context"

	"trendboard/internal/core/aggregate"
	"trendboard/internal/core/trending"
	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/logger"
	"trendboard/internal/services/api/trends/domain"
	"trendboard/internal/services/api/trends/repo"
)

// Service defines the trends service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the trends service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a trends service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("trends.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("trends.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Trending returns one page of trending repos for a date, category and period.
// The aggregation function runs first; on error or zero rows the plain join
// runs instead with the same row shape. A language filter always takes the
// join path because the function does not accept one
func (s *Svc) Trending(ctx context.Context, in domain.TrendingInput) (domain.TrendingOutput, error) {
	date := in.Date
	if date == "" {
		date = trending.Today()
	}
	category := in.Category
	if category == "" {
		category = string(trending.CategoryAll)
	}
	period := in.Period
	if period == "" {
		period = string(trending.PeriodDaily)
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = 25
	}
	offset := (page - 1) * pageSize

	var rows []repo.TrendingRow
	var err error
	if in.Language == "" {
		rows, err = s.Repo.TrendingFunc(ctx, date, category, period, pageSize, offset)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("get_trending_repos unavailable, using join fallback")
		}
	}
	if in.Language != "" || err != nil || len(rows) == 0 {
		rows, err = s.Repo.TrendingJoin(ctx, date, category, period, in.Language, pageSize, offset)
		if err != nil {
			return domain.TrendingOutput{}, perr.FromPostgres(err, "trending lookup failed")
		}
	}

	total, err := s.Repo.TrendingCount(ctx, date, category, period, in.Language)
	if err != nil {
		return domain.TrendingOutput{}, perr.FromPostgres(err, "trending count failed")
	}

	out := domain.TrendingOutput{
		Data:     make([]domain.TrendingRepo, 0, len(rows)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Date:     date,
		Category: category,
		Period:   period,
	}
	for _, r := range rows {
		out.Data = append(out.Data, domain.TrendingRepo{
			ID:            r.ID,
			Name:          r.Name,
			URL:           r.URL,
			Description:   r.Description,
			ZhDescription: r.ZhDescription,
			Language:      r.Language,
			Owner:         r.Owner,
			RepoName:      r.RepoName,
			Stars:         r.Stars,
			Forks:         r.Forks,
			StarsToday:    r.StarsToday,
			Rank:          r.Rank,
			Date:          date,
			Category:      category,
			Period:        period,
		})
	}
	return out, nil
}

// Languages returns per-language aggregates for a date, function first with
// a group-by fallback and an in-process reduction as the last resort
func (s *Svc) Languages(ctx context.Context, in domain.LanguagesInput) (domain.LanguagesOutput, error) {
	date := in.Date
	if date == "" {
		date = trending.Today()
	}

	rows, err := s.Repo.LanguageStatsFunc(ctx, date)
	if err != nil || len(rows) == 0 {
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("get_language_stats unavailable, using group-by fallback")
		}
		rows, err = s.Repo.LanguageStatsJoin(ctx, date)
	}
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("language group-by unavailable, reducing in process")
		raw, err := s.Repo.LanguageRows(ctx, date)
		if err != nil {
			return domain.LanguagesOutput{}, perr.FromPostgres(err, "language stats lookup failed")
		}
		rows = rows[:0]
		for _, st := range aggregate.GroupByLanguage(raw) {
			rows = append(rows, repo.LangStatRow{
				Language:   st.Language,
				TotalRepos: int64(st.RepoCount),
				TotalStars: st.TotalStars,
				AvgStars:   st.AvgStars,
			})
		}
	}

	out := domain.LanguagesOutput{
		Data: make([]domain.LanguageStat, 0, len(rows)),
		Date: date,
	}
	for _, r := range rows {
		out.Data = append(out.Data, domain.LanguageStat{
			Language:   r.Language,
			TotalRepos: r.TotalRepos,
			TotalStars: r.TotalStars,
			AvgStars:   r.AvgStars,
		})
	}
	return out, nil
}

// DateStats returns per-date import stats in the requested flavor.
// Each flavor runs its aggregation function first and falls back to the
// in-process reduction over raw snapshot rows
func (s *Svc) DateStats(ctx context.Context, in domain.DateStatsInput) (domain.DateStatsOutput, error) {
	typ := in.Type
	if typ == "" {
		typ = "basic"
	}
	limit := in.Limit
	if limit < 1 {
		limit = 30
	}

	var data any
	var total int
	switch typ {
	case "detailed":
		rows, err := s.Repo.DateDetailedFunc(ctx, limit)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("get_date_detailed_stats unavailable, reducing in process")
			snaps, err := s.Repo.Snapshots(ctx)
			if err != nil {
				return domain.DateStatsOutput{}, perr.FromPostgres(err, "snapshot scan failed")
			}
			rows = aggregate.GroupByDate(snaps, limit)
		}
		data, total = rows, len(rows)

	case "monthly":
		rows, err := s.Repo.MonthlyFunc(ctx)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("get_monthly_stats unavailable, reducing in process")
			snaps, err := s.Repo.Snapshots(ctx)
			if err != nil {
				return domain.DateStatsOutput{}, perr.FromPostgres(err, "snapshot scan failed")
			}
			rows = aggregate.GroupByMonth(snaps)
		}
		data, total = rows, len(rows)

	case "simple":
		// always reduced in process from the bare date column
		dates, err := s.Repo.DateColumn(ctx)
		if err != nil {
			return domain.DateStatsOutput{}, perr.FromPostgres(err, "date scan failed")
		}
		snaps := make([]aggregate.SnapshotRow, 0, len(dates))
		for _, d := range dates {
			snaps = append(snaps, aggregate.SnapshotRow{Date: d})
		}
		rows := aggregate.GroupByDateBasic(snaps, limit)
		data, total = rows, len(rows)

	default: // basic
		rows, err := s.Repo.DateBasicFunc(ctx, limit)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("get_date_basic_stats unavailable, reducing in process")
			dates, err := s.Repo.DateColumn(ctx)
			if err != nil {
				return domain.DateStatsOutput{}, perr.FromPostgres(err, "date scan failed")
			}
			snaps := make([]aggregate.SnapshotRow, 0, len(dates))
			for _, d := range dates {
				snaps = append(snaps, aggregate.SnapshotRow{Date: d})
			}
			rows = aggregate.GroupByDateBasic(snaps, limit)
		}
		data, total = rows, len(rows)
	}

	return domain.DateStatsOutput{Data: data, Total: total, Type: typ, Limit: limit}, nil
}

// DBInfo reports which dates exist and how well each category and period is covered
func (s *Svc) DBInfo(ctx context.Context) (domain.DBInfoOutput, error) {
	dates, err := s.Repo.DistinctDates(ctx)
	if err != nil {
		return domain.DBInfoOutput{}, perr.FromPostgres(err, "date scan failed")
	}
	coverage, err := s.Repo.Coverage(ctx)
	if err != nil {
		return domain.DBInfoOutput{}, perr.FromPostgres(err, "coverage scan failed")
	}

	recent := dates
	if len(recent) > 10 {
		recent = recent[:10]
	}

	out := domain.DBInfoOutput{
		AvailableDates: recent,
		TotalDates:     len(dates),
		CategoryStats:  make([]domain.CategoryCoverage, 0, len(coverage)),
	}
	for _, c := range coverage {
		out.CategoryStats = append(out.CategoryStats, domain.CategoryCoverage{
			Category:   c.Category,
			Period:     c.Period,
			DateCount:  c.DateCount,
			LatestDate: c.LatestDate,
		})
	}
	return out, nil
}
