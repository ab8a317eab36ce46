// Package repo provides postgres access for repository search
package repo

import (
	"context"

	"trendboard/internal/modkit/repokit"
)

// Params are the translated search filters
// Pattern is the ILIKE pattern built from the raw query
type Params struct {
	Field    string
	Pattern  string
	Language string
	Category string
	Period   string
	MinStars int
	Limit    int
	Offset   int
}

// Row is one matched repository plus its latest snapshot for the
// category and period window
type Row struct {
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
	Date          string
}

// Repo is the minimal persistence surface for search
type Repo interface {
	Search(ctx context.Context, p Params) ([]Row, error)
	Count(ctx context.Context, p Params) (int, error)
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

// latest snapshot per repository within the category and period window,
// then the field-scoped ILIKE predicate on top
const searchBody = `
from (
    select distinct on (r.id)
           r.id, r.name, r.url, r.description, r.zh_description,
           r.language, r.owner, r.repo_name,
           t.stars, t.forks, t.stars_today, t.rank, t.date::text as date
    from trending_data t
    join repositories r on r.id = t.repository_id
    where t.category = $1
    and t.period = $2
    order by r.id, t.date desc
) s
where (
    ($3 = 'name' and s.name ilike $4)
    or ($3 = 'owner' and coalesce(s.owner, '') ilike $4)
    or ($3 = 'description' and (
        coalesce(s.description, '') ilike $4 or coalesce(s.zh_description, '') ilike $4
    ))
    or ($3 = 'all' and (
        s.name ilike $4
        or coalesce(s.description, '') ilike $4
        or coalesce(s.zh_description, '') ilike $4
        or coalesce(s.owner, '') ilike $4
    ))
)
and ($5 = '' or lower(coalesce(s.language, '')) = lower($5))
and s.stars >= $6
`

func (r *queries) Search(ctx context.Context, p Params) ([]Row, error) {
	const sql = `
select s.id, s.name, s.url, s.description, s.zh_description,
       s.language, s.owner, s.repo_name,
       s.stars, s.forks, s.stars_today, s.rank, s.date
` + searchBody + `
order by s.stars desc
limit $7 offset $8
`
	rows, err := r.q.Query(
		ctx, sql,
		p.Category, p.Period, p.Field, p.Pattern, p.Language, p.MinStars, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(
			&rr.ID, &rr.Name, &rr.URL, &rr.Description, &rr.ZhDescription,
			&rr.Language, &rr.Owner, &rr.RepoName,
			&rr.Stars, &rr.Forks, &rr.StarsToday, &rr.Rank, &rr.Date,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Count(ctx context.Context, p Params) (int, error) {
	const sql = `select count(1) ` + searchBody
	var n int
	err := r.q.QueryRow(
		ctx, sql,
		p.Category, p.Period, p.Field, p.Pattern, p.Language, p.MinStars,
	).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
