// Package repo provides postgres access for importer writes
package repo

import (
	"context"
	"fmt"

	"trendboard/internal/modkit/repokit"
	"trendboard/internal/services/importer/domain"
)

type (
	// PG is a Postgres binder for domain.StorageRepo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a Postgres binder for domain.StorageRepo
func NewPG() repokit.Binder[domain.StorageRepo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.StorageRepo { return &queries{q: q} }

// UpsertRepository inserts or refreshes a repository by name (idempotent)
func (r *queries) UpsertRepository(ctx context.Context, rec domain.RepoRecord) (int64, error) {
	const sql = `
		INSERT INTO repositories (name, url, description, zh_description, language, owner, repo_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO UPDATE SET
			url = EXCLUDED.url,
			description = EXCLUDED.description,
			zh_description = EXCLUDED.zh_description,
			language = EXCLUDED.language,
			owner = EXCLUDED.owner,
			repo_name = EXCLUDED.repo_name,
			updated_at = now()
		RETURNING id
	`
	var id int64
	err := r.q.QueryRow(ctx, sql,
		rec.Name, rec.URL, rec.Description, rec.ZhDescription,
		rec.Language, rec.Owner, rec.RepoName,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert repository %s: %w", rec.Name, err)
	}
	return id, nil
}

// UpsertSnapshots inserts or refreshes trending rows (idempotent on rerun)
func (r *queries) UpsertSnapshots(ctx context.Context, rows []domain.SnapshotRecord) (int, error) {
	const sql = `
		INSERT INTO trending_data (repository_id, date, category, period, stars, forks, stars_today, rank)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (repository_id, date, category, period) DO UPDATE SET
			stars = EXCLUDED.stars,
			forks = EXCLUDED.forks,
			stars_today = EXCLUDED.stars_today,
			rank = EXCLUDED.rank
	`
	written := 0
	for _, s := range rows {
		tag, err := r.q.Exec(ctx, sql,
			s.RepositoryID, s.Date, s.Category, s.Period,
			s.Stars, s.Forks, s.StarsToday, s.Rank,
		)
		if err != nil {
			return written, fmt.Errorf("upsert snapshot repo=%d %s %s/%s: %w",
				s.RepositoryID, s.Date, s.Category, s.Period, err)
		}
		if tag.RowsAffected() > 0 {
			written++
		}
	}
	return written, nil
}

// UpsertTopicRepos inserts or refreshes topic repositories by github_id
func (r *queries) UpsertTopicRepos(ctx context.Context, rows []domain.TopicRepoRecord) (int, error) {
	const sql = `
		INSERT INTO topic_repositories (
			github_id, name, full_name, html_url, description, zh_description,
			created_at, updated_at, pushed_at, size, stargazers_count,
			language, topics, owner, readme_content, added_at
		)
		VALUES ($1, $2, $3, $4, $5, NULL, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		ON CONFLICT (github_id) DO UPDATE SET
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			html_url = EXCLUDED.html_url,
			description = EXCLUDED.description,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at,
			pushed_at = EXCLUDED.pushed_at,
			size = EXCLUDED.size,
			stargazers_count = EXCLUDED.stargazers_count,
			language = EXCLUDED.language,
			topics = EXCLUDED.topics,
			owner = EXCLUDED.owner,
			readme_content = EXCLUDED.readme_content
	`
	written := 0
	for _, t := range rows {
		topics := t.Topics
		if topics == nil {
			topics = []string{}
		}
		tag, err := r.q.Exec(ctx, sql,
			t.GithubID, t.Name, t.FullName, t.HTMLURL, t.Description,
			t.CreatedAt, t.UpdatedAt, t.PushedAt, t.Size, t.StargazersCount,
			t.Language, topics, t.Owner, t.Readme,
		)
		if err != nil {
			return written, fmt.Errorf("upsert topic repo %d (%s): %w", t.GithubID, t.FullName, err)
		}
		if tag.RowsAffected() > 0 {
			written++
		}
	}
	return written, nil
}
