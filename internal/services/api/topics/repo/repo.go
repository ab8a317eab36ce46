// Package repo provides postgres access for the topic corpus
package repo

import (
	"context"
	"time"

	"trendboard/internal/modkit/repokit"
)

// Row is one topic_repositories row
type Row struct {
	ID              int64
	GithubID        int64
	Name            string
	FullName        string
	HTMLURL         string
	Description     *string
	ZhDescription   *string
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	PushedAt        *time.Time
	Size            int64
	StargazersCount int64
	Language        *string
	Topics          []string
	Owner           string
	ReadmeContent   *string
	AddedAt         time.Time
}

// Filter narrows a topic listing
// empty Language or Date means no filter
type Filter struct {
	Topic    string
	Language string
	Date     string
	Limit    int
	Offset   int
}

// Repo is the minimal persistence surface for topics
type Repo interface {
	TopicLists(ctx context.Context) ([][]string, error)
	ReposByTopic(ctx context.Context, f Filter) ([]Row, error)
	CountByTopic(ctx context.Context, f Filter) (int, error)
	LanguagesForTopic(ctx context.Context, topic string) ([]string, error)
	DatesForTopic(ctx context.Context, topic string) ([]string, error)
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

func (r *queries) TopicLists(ctx context.Context) ([][]string, error) {
	const sql = `
select topics
from topic_repositories
where topics is not null and array_length(topics, 1) > 0
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out [][]string
	for rows.Next() {
		var topics []string
		if err := rows.Scan(&topics); err != nil {
			return nil, err
		}
		out = append(out, topics)
	}
	return out, rows.Err()
}

// topic match is exact array membership, never a substring
const topicFilter = `
where topics @> $1::text[]
and ($2 = '' or lower(coalesce(language, '')) = lower($2))
and ($3 = '' or (created_at >= $3::date and created_at < $3::date + interval '1 day'))
`

func (r *queries) ReposByTopic(ctx context.Context, f Filter) ([]Row, error) {
	const sql = `
select id, github_id, name, full_name, html_url, description, zh_description,
       created_at, updated_at, pushed_at, size, stargazers_count,
       language, topics, owner, readme_content, added_at
from topic_repositories
` + topicFilter + `
order by stargazers_count desc
limit $4 offset $5
`
	rows, err := r.q.Query(ctx, sql, []string{f.Topic}, f.Language, f.Date, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Row
	for rows.Next() {
		var rr Row
		if err := rows.Scan(
			&rr.ID, &rr.GithubID, &rr.Name, &rr.FullName, &rr.HTMLURL,
			&rr.Description, &rr.ZhDescription,
			&rr.CreatedAt, &rr.UpdatedAt, &rr.PushedAt,
			&rr.Size, &rr.StargazersCount,
			&rr.Language, &rr.Topics, &rr.Owner, &rr.ReadmeContent, &rr.AddedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) CountByTopic(ctx context.Context, f Filter) (int, error) {
	const sql = `select count(1) from topic_repositories ` + topicFilter
	var n int
	if err := r.q.QueryRow(ctx, sql, []string{f.Topic}, f.Language, f.Date).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) LanguagesForTopic(ctx context.Context, topic string) ([]string, error) {
	const sql = `
select distinct language
from topic_repositories
where topics @> $1::text[]
and language is not null and language <> ''
order by 1 asc
`
	rows, err := r.q.Query(ctx, sql, []string{topic})
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, err
		}
		out = append(out, lang)
	}
	return out, rows.Err()
}

func (r *queries) DatesForTopic(ctx context.Context, topic string) ([]string, error) {
	const sql = `
select distinct created_at::date::text
from topic_repositories
where topics @> $1::text[]
and created_at is not null
order by 1 desc
`
	rows, err := r.q.Query(ctx, sql, []string{topic})
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
