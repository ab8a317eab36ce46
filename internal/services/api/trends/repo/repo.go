// Package repo provides postgres access for the trending query surface
package repo

import (
	"context"

	"trendboard/internal/core/aggregate"
	"trendboard/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for trends
// the Func variants call the optional aggregation functions and the
// Join variants are the plain-SQL fallbacks with identical row shapes
type Repo interface {
	TrendingFunc(ctx context.Context, date, category, period string, limit, offset int) ([]TrendingRow, error)
	TrendingJoin(ctx context.Context, date, category, period, language string, limit, offset int) ([]TrendingRow, error)
	TrendingCount(ctx context.Context, date, category, period, language string) (int, error)

	LanguageStatsFunc(ctx context.Context, date string) ([]LangStatRow, error)
	LanguageStatsJoin(ctx context.Context, date string) ([]LangStatRow, error)
	LanguageRows(ctx context.Context, date string) ([]aggregate.LangRow, error)

	DateBasicFunc(ctx context.Context, limit int) ([]aggregate.BasicDateStat, error)
	DateDetailedFunc(ctx context.Context, limit int) ([]aggregate.DateStat, error)
	MonthlyFunc(ctx context.Context) ([]aggregate.MonthlyStat, error)

	Snapshots(ctx context.Context) ([]aggregate.SnapshotRow, error)
	DateColumn(ctx context.Context) ([]string, error)

	DistinctDates(ctx context.Context) ([]string, error)
	Coverage(ctx context.Context) ([]CoverageRow, error)
}

// TrendingRow is one repository plus its snapshot numbers
type TrendingRow struct {
	ID            int64
	Name          string
	URL           string
	Description   *string
	ZhDescription *string
	Language      *string
	Owner         *string
	RepoName      *string
	Stars         int64
	Forks         int64
	StarsToday    int64
	Rank          *int
}

// LangStatRow is one language bucket for a date
type LangStatRow struct {
	Language   string
	TotalRepos int64
	TotalStars int64
	AvgStars   int64
}

// CoverageRow reports per category and period date coverage
type CoverageRow struct {
	Category   string
	Period     string
	DateCount  int
	LatestDate string
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) scanTrending(ctx context.Context, sql string, args ...any) ([]TrendingRow, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TrendingRow
	for rows.Next() {
		var rr TrendingRow
		if err := rows.Scan(
			&rr.ID, &rr.Name, &rr.URL, &rr.Description, &rr.ZhDescription,
			&rr.Language, &rr.Owner, &rr.RepoName,
			&rr.Stars, &rr.Forks, &rr.StarsToday, &rr.Rank,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) TrendingFunc(
	ctx context.Context,
	date, category, period string,
	limit, offset int,
) ([]TrendingRow, error) {
	const sql = `
select id, name, url, description, zh_description, language, owner, repo_name,
       stars, forks, stars_today, rank
from get_trending_repos($1::date, $2, $3, $4, $5)
`
	return r.scanTrending(ctx, sql, date, category, period, limit, offset)
}

func (r *queries) TrendingJoin(
	ctx context.Context,
	date, category, period, language string,
	limit, offset int,
) ([]TrendingRow, error) {
	const sql = `
select r.id, r.name, r.url, r.description, r.zh_description,
       r.language, r.owner, r.repo_name,
       t.stars, t.forks, t.stars_today, t.rank
from trending_data t
join repositories r on r.id = t.repository_id
where t.date = $1::date
and t.category = $2
and t.period = $3
and ($4 = '' or lower(coalesce(r.language, '')) = lower($4))
order by t.rank nulls last, t.stars desc
limit $5 offset $6
`
	return r.scanTrending(ctx, sql, date, category, period, language, limit, offset)
}

func (r *queries) TrendingCount(ctx context.Context, date, category, period, language string) (int, error) {
	const sql = `
select count(1)
from trending_data t
join repositories r on r.id = t.repository_id
where t.date = $1::date
and t.category = $2
and t.period = $3
and ($4 = '' or lower(coalesce(r.language, '')) = lower($4))
`
	var n int
	if err := r.q.QueryRow(ctx, sql, date, category, period, language).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) scanLangStats(ctx context.Context, sql string, args ...any) ([]LangStatRow, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LangStatRow
	for rows.Next() {
		var rr LangStatRow
		if err := rows.Scan(&rr.Language, &rr.TotalRepos, &rr.TotalStars, &rr.AvgStars); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) LanguageStatsFunc(ctx context.Context, date string) ([]LangStatRow, error) {
	const sql = `select language, total_repos, total_stars, avg_stars from get_language_stats($1::date)`
	return r.scanLangStats(ctx, sql, date)
}

func (r *queries) LanguageStatsJoin(ctx context.Context, date string) ([]LangStatRow, error) {
	const sql = `
select r.language,
       count(1) as total_repos,
       sum(t.stars) as total_stars,
       avg(t.stars)::bigint as avg_stars
from trending_data t
join repositories r on r.id = t.repository_id
where t.date = $1::date
and r.language is not null and trim(r.language) <> ''
group by r.language
order by total_stars desc, language asc
`
	return r.scanLangStats(ctx, sql, date)
}

// LanguageRows feeds the in-process language reduction when both the
// aggregation function and the group-by query are unavailable
func (r *queries) LanguageRows(ctx context.Context, date string) ([]aggregate.LangRow, error) {
	const sql = `
select coalesce(r.language, ''), t.stars
from trending_data t
join repositories r on r.id = t.repository_id
where t.date = $1::date
`
	rows, err := r.q.Query(ctx, sql, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []aggregate.LangRow
	for rows.Next() {
		var rr aggregate.LangRow
		if err := rows.Scan(&rr.Language, &rr.Stars); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) DateBasicFunc(ctx context.Context, limit int) ([]aggregate.BasicDateStat, error) {
	const sql = `select date::text, total_records, data_quality from get_date_basic_stats($1)`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []aggregate.BasicDateStat
	for rows.Next() {
		var rr aggregate.BasicDateStat
		if err := rows.Scan(&rr.Date, &rr.TotalRecords, &rr.DataQuality); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) DateDetailedFunc(ctx context.Context, limit int) ([]aggregate.DateStat, error) {
	const sql = `
select date::text, total_records, categories_count, periods_count,
       avg_stars, total_stars_today, data_quality,
       first_import_time, last_import_time
from get_date_detailed_stats($1)
`
	rows, err := r.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []aggregate.DateStat
	for rows.Next() {
		var rr aggregate.DateStat
		if err := rows.Scan(
			&rr.Date, &rr.TotalRecords, &rr.CategoriesCount, &rr.PeriodsCount,
			&rr.AvgStars, &rr.TotalStarsToday, &rr.DataQuality,
			&rr.FirstImportTime, &rr.LastImportTime,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) MonthlyFunc(ctx context.Context) ([]aggregate.MonthlyStat, error) {
	const sql = `select month, total_records, active_days, avg_stars from get_monthly_stats()`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []aggregate.MonthlyStat
	for rows.Next() {
		var rr aggregate.MonthlyStat
		if err := rows.Scan(&rr.Month, &rr.TotalRecords, &rr.ActiveDays, &rr.AvgStars); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Snapshots(ctx context.Context) ([]aggregate.SnapshotRow, error) {
	const sql = `
select date::text, category, period, stars, stars_today, created_at
from trending_data
order by date desc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []aggregate.SnapshotRow
	for rows.Next() {
		var rr aggregate.SnapshotRow
		if err := rows.Scan(&rr.Date, &rr.Category, &rr.Period, &rr.Stars, &rr.StarsToday, &rr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) DateColumn(ctx context.Context) ([]string, error) {
	const sql = `select date::text from trending_data order by date desc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *queries) DistinctDates(ctx context.Context) ([]string, error) {
	const sql = `select distinct date::text from trending_data order by 1 desc`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *queries) Coverage(ctx context.Context) ([]CoverageRow, error) {
	const sql = `
select category, period, count(distinct date) as date_count, max(date)::text as latest_date
from trending_data
group by category, period
order by category asc, period asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CoverageRow
	for rows.Next() {
		var rr CoverageRow
		if err := rows.Scan(&rr.Category, &rr.Period, &rr.DateCount, &rr.LatestDate); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
