// Package repo provides postgres access for users and their repositories
package repo

import (
	"context"
	"fmt"
	"time"

	"trendboard/internal/modkit/repokit"
)

// StatRow is one user's aggregate row as returned by get_user_stats
// or the equivalent join
type StatRow struct {
	Login            string
	Name             *string
	Type             string
	Followers        int64
	Following        int64
	PublicRepos      int64
	TotalReposInDB   int64
	TotalStars       int64
	AvgStars         int64
	TopLanguage      *string
	LanguagesCount   int64
	LastRepoUpdate   *time.Time
	AccountCreatedAt *time.Time
}

// UserRow is one users table row
type UserRow struct {
	Login           string
	Name            *string
	AvatarURL       *string
	HTMLURL         *string
	Type            string
	Bio             *string
	Location        *string
	Email           *string
	Company         *string
	Blog            *string
	TwitterUsername *string
	Hireable        *bool
	Followers       int64
	Following       int64
	PublicRepos     int64
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

// LangRow is one language bucket scoped to a user
type LangRow struct {
	Language   string
	RepoCount  int64
	TotalStars int64
	AvgStars   int64
}

// RepoRow is one user_repositories row
type RepoRow struct {
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
}

// RepoUserRow is a repository row joined with its owner
type RepoUserRow struct {
	RepoRow

	OwnerLogin  string
	OwnerName   *string
	OwnerAvatar *string
	OwnerType   string
}

// UserReposParams filter one user's repositories
type UserReposParams struct {
	Login    string
	Language string
	MinStars int
	Sort     string
	Order    string
	Limit    int
	Offset   int
}

// ListParams filter the joined repo and owner listing
type ListParams struct {
	MinStars  int
	Language  string
	UserType  string
	UserLogin string
	Sort      string
	Order     string
	Limit     int
	Offset    int
}

// Repo is the minimal persistence surface for users
type Repo interface {
	StatsFunc(ctx context.Context, login string) ([]StatRow, error)
	StatsJoin(ctx context.Context, login string) ([]StatRow, error)
	ByLogin(ctx context.Context, login string) (*UserRow, error)
	Exists(ctx context.Context, login string) (bool, error)

	LangStatsFunc(ctx context.Context, login string) ([]LangRow, error)
	LangStatsJoin(ctx context.Context, login string) ([]LangRow, error)

	UserReposFunc(ctx context.Context, p UserReposParams) ([]RepoRow, error)
	UserReposJoin(ctx context.Context, p UserReposParams) ([]RepoRow, error)
	UserReposCount(ctx context.Context, login, language string, minStars int) (int, error)

	List(ctx context.Context, p ListParams) ([]RepoUserRow, error)
	ListCount(ctx context.Context, p ListParams) (int, error)
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

func (r *queries) scanStats(ctx context.Context, sql string, args ...any) ([]StatRow, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StatRow
	for rows.Next() {
		var rr StatRow
		if err := rows.Scan(
			&rr.Login, &rr.Name, &rr.Type,
			&rr.Followers, &rr.Following, &rr.PublicRepos,
			&rr.TotalReposInDB, &rr.TotalStars, &rr.AvgStars,
			&rr.TopLanguage, &rr.LanguagesCount,
			&rr.LastRepoUpdate, &rr.AccountCreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) StatsFunc(ctx context.Context, login string) ([]StatRow, error) {
	const sql = `
select user_login, user_name, user_type, followers, following, public_repos,
       total_repos_in_db, total_stars, avg_stars, top_language, languages_count,
       last_repo_update, account_created_at
from get_user_stats($1)
`
	var arg any
	if login != "" {
		arg = login
	}
	return r.scanStats(ctx, sql, arg)
}

func (r *queries) StatsJoin(ctx context.Context, login string) ([]StatRow, error) {
	const sql = `
select u.login, u.name, u.type, u.followers, u.following, u.public_repos,
       count(ur.id) as total_repos_in_db,
       coalesce(sum(ur.stargazers_count), 0) as total_stars,
       coalesce(avg(ur.stargazers_count)::bigint, 0) as avg_stars,
       (
           select ur2.language
           from user_repositories ur2
           where ur2.user_id = u.id and ur2.language is not null
           group by ur2.language
           order by count(1) desc, ur2.language asc
           limit 1
       ) as top_language,
       count(distinct ur.language) filter (where ur.language is not null) as languages_count,
       max(ur.updated_at) as last_repo_update,
       u.created_at as account_created_at
from users u
left join user_repositories ur on ur.user_id = u.id
where ($1 = '' or u.login = $1)
group by u.id
order by total_stars desc
`
	return r.scanStats(ctx, sql, login)
}

func (r *queries) ByLogin(ctx context.Context, login string) (*UserRow, error) {
	const sql = `
select login, name, avatar_url, html_url, type, bio, location, email, company,
       blog, twitter_username, hireable, followers, following, public_repos,
       created_at, updated_at
from users
where login = $1
`
	rows, err := r.q.Query(ctx, sql, login)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, rows.Err()
	}
	var u UserRow
	if err := rows.Scan(
		&u.Login, &u.Name, &u.AvatarURL, &u.HTMLURL, &u.Type,
		&u.Bio, &u.Location, &u.Email, &u.Company,
		&u.Blog, &u.TwitterUsername, &u.Hireable,
		&u.Followers, &u.Following, &u.PublicRepos,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, rows.Err()
}

func (r *queries) Exists(ctx context.Context, login string) (bool, error) {
	const sql = `select exists(select 1 from users where login = $1)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, login).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) scanLangStats(ctx context.Context, sql string, args ...any) ([]LangRow, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LangRow
	for rows.Next() {
		var rr LangRow
		if err := rows.Scan(&rr.Language, &rr.RepoCount, &rr.TotalStars, &rr.AvgStars); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) LangStatsFunc(ctx context.Context, login string) ([]LangRow, error) {
	const sql = `select language, repo_count, total_stars, avg_stars from get_language_stats_by_user($1)`
	return r.scanLangStats(ctx, sql, login)
}

func (r *queries) LangStatsJoin(ctx context.Context, login string) ([]LangRow, error) {
	const sql = `
select coalesce(nullif(trim(ur.language), ''), 'Unknown') as language,
       count(1) as repo_count,
       sum(ur.stargazers_count) as total_stars,
       avg(ur.stargazers_count)::bigint as avg_stars
from user_repositories ur
join users u on u.id = ur.user_id
where u.login = $1
group by 1
order by repo_count desc, language asc
`
	return r.scanLangStats(ctx, sql, login)
}

const repoCols = `
id, github_id, name, full_name, html_url, description, zh_description,
created_at, updated_at, pushed_at, size, stargazers_count,
language, topics, owner, readme_content
`

func scanRepoRow(rows repokit.Rows, rr *RepoRow) error {
	return rows.Scan(
		&rr.ID, &rr.GithubID, &rr.Name, &rr.FullName, &rr.HTMLURL,
		&rr.Description, &rr.ZhDescription,
		&rr.CreatedAt, &rr.UpdatedAt, &rr.PushedAt,
		&rr.Size, &rr.StargazersCount,
		&rr.Language, &rr.Topics, &rr.Owner, &rr.ReadmeContent,
	)
}

func (r *queries) scanRepos(ctx context.Context, sql string, args ...any) ([]RepoRow, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RepoRow
	for rows.Next() {
		var rr RepoRow
		if err := scanRepoRow(rows, &rr); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) UserReposFunc(ctx context.Context, p UserReposParams) ([]RepoRow, error) {
	const sql = `
select ` + repoCols + `
from get_user_repositories($1, $2, $3, $4, $5, $6, $7)
`
	var lang any
	if p.Language != "" {
		lang = p.Language
	}
	return r.scanRepos(ctx, sql, p.Login, lang, p.MinStars, p.Sort, p.Order, p.Limit, p.Offset)
}

// userRepoSortCols whitelists sortable columns, anything else falls back to stars
var userRepoSortCols = map[string]string{
	"stars":   "stargazers_count",
	"updated": "updated_at",
	"created": "created_at",
	"pushed":  "pushed_at",
	"name":    "name",
}

func orderClause(cols map[string]string, sort, order string) string {
	col, ok := cols[sort]
	if !ok {
		col = "stargazers_count"
	}
	dir := "desc"
	if order == "asc" {
		dir = "asc"
	}
	return fmt.Sprintf("order by %s %s nulls last", col, dir)
}

func (r *queries) UserReposJoin(ctx context.Context, p UserReposParams) ([]RepoRow, error) {
	sql := `
select ` + repoCols + `
from user_repositories
where owner = $1
and stargazers_count >= $2
and ($3 = '' or language = $3)
` + orderClause(userRepoSortCols, p.Sort, p.Order) + `
limit $4 offset $5
`
	return r.scanRepos(ctx, sql, p.Login, p.MinStars, p.Language, p.Limit, p.Offset)
}

func (r *queries) UserReposCount(ctx context.Context, login, language string, minStars int) (int, error) {
	const sql = `
select count(1)
from user_repositories
where owner = $1
and stargazers_count >= $2
and ($3 = '' or language = $3)
`
	var n int
	if err := r.q.QueryRow(ctx, sql, login, minStars, language).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// listSortCols is the joined listing whitelist, it has no pushed option
var listSortCols = map[string]string{
	"stars":   "ur.stargazers_count",
	"updated": "ur.updated_at",
	"created": "ur.created_at",
	"name":    "ur.name",
}

const listFilter = `
from user_repositories ur
join users u on u.id = ur.user_id
where ur.stargazers_count >= $1
and ($2 = '' or coalesce(ur.language, '') ilike '%' || $2 || '%')
and ($3 = '' or u.type = $3)
and ($4 = '' or u.login ilike '%' || $4 || '%')
`

func (r *queries) List(ctx context.Context, p ListParams) ([]RepoUserRow, error) {
	sql := `
select ur.id, ur.github_id, ur.name, ur.full_name, ur.html_url,
       ur.description, ur.zh_description,
       ur.created_at, ur.updated_at, ur.pushed_at,
       ur.size, ur.stargazers_count,
       ur.language, ur.topics, ur.owner, ur.readme_content,
       u.login, u.name, u.avatar_url, u.type
` + listFilter + orderClause(listSortCols, p.Sort, p.Order) + `
limit $5 offset $6
`
	rows, err := r.q.Query(ctx, sql, p.MinStars, p.Language, p.UserType, p.UserLogin, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RepoUserRow
	for rows.Next() {
		var rr RepoUserRow
		if err := rows.Scan(
			&rr.ID, &rr.GithubID, &rr.Name, &rr.FullName, &rr.HTMLURL,
			&rr.Description, &rr.ZhDescription,
			&rr.CreatedAt, &rr.UpdatedAt, &rr.PushedAt,
			&rr.Size, &rr.StargazersCount,
			&rr.Language, &rr.Topics, &rr.Owner, &rr.ReadmeContent,
			&rr.OwnerLogin, &rr.OwnerName, &rr.OwnerAvatar, &rr.OwnerType,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) ListCount(ctx context.Context, p ListParams) (int, error) {
	const sql = `select count(1) ` + listFilter
	var n int
	err := r.q.QueryRow(ctx, sql, p.MinStars, p.Language, p.UserType, p.UserLogin).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
