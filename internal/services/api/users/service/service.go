// Package service contains the user query workflows
package service

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/logger"
	"trendboard/internal/services/api/users/domain"
	"trendboard/internal/services/api/users/repo"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the users service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func statToDomain(r repo.StatRow) domain.UserStat {
	return domain.UserStat{
		Login:            r.Login,
		Name:             r.Name,
		Type:             r.Type,
		Followers:        r.Followers,
		Following:        r.Following,
		PublicRepos:      r.PublicRepos,
		TotalReposInDB:   r.TotalReposInDB,
		TotalStars:       r.TotalStars,
		AvgStars:         r.AvgStars,
		TopLanguage:      r.TopLanguage,
		LanguagesCount:   r.LanguagesCount,
		LastRepoUpdate:   r.LastRepoUpdate,
		AccountCreatedAt: r.AccountCreatedAt,
	}
}

// sortStats orders stats in place by the whitelisted sort key.
// The aggregation function returns a fixed order so the requested key
// applies here, after the type filter
func sortStats(stats []domain.UserStat, key, order string) {
	asc := order == "asc"
	less := func(a, b domain.UserStat) bool {
		switch key {
		case "repos":
			return a.TotalReposInDB < b.TotalReposInDB
		case "followers":
			return a.Followers < b.Followers
		case "created":
			at, bt := a.AccountCreatedAt, b.AccountCreatedAt
			switch {
			case at == nil:
				return bt != nil
			case bt == nil:
				return false
			default:
				return at.Before(*bt)
			}
		default: // stars
			return a.TotalStars < b.TotalStars
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if asc {
			return less(stats[i], stats[j])
		}
		return less(stats[j], stats[i])
	})
}

// Users returns one page of per-user aggregates. The full stat set loads
// once, then the type filter, sort and page apply in process
func (s *Svc) Users(ctx context.Context, in domain.UsersInput) (domain.UsersOutput, error) {
	limit := in.Limit
	if limit < 1 {
		limit = 50
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	sortKey := in.Sort
	if sortKey == "" {
		sortKey = "stars"
	}
	order := in.Order
	if order == "" {
		order = "desc"
	}

	rows, err := s.Repo.StatsFunc(ctx, "")
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("get_user_stats unavailable, using join fallback")
		rows, err = s.Repo.StatsJoin(ctx, "")
		if err != nil {
			return domain.UsersOutput{}, perr.FromPostgres(err, "user stats lookup failed")
		}
	}

	stats := make([]domain.UserStat, 0, len(rows))
	for _, r := range rows {
		if in.Type != "" && r.Type != in.Type {
			continue
		}
		stats = append(stats, statToDomain(r))
	}
	sortStats(stats, sortKey, order)

	total := len(stats)
	page := stats[min(offset, total):min(offset+limit, total)]

	return domain.UsersOutput{
		Users:   page,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(page) < total,
	}, nil
}

// User returns one user's full profile with aggregates and language
// breakdown. A missing login maps to not found; a failing language
// breakdown degrades to an empty list rather than failing the profile
func (s *Svc) User(ctx context.Context, login string) (domain.UserDetailOutput, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return domain.UserDetailOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "login is required"), "login",
		)
	}

	row, err := s.Repo.ByLogin(ctx, login)
	if err != nil {
		return domain.UserDetailOutput{}, perr.FromPostgres(err, "user lookup failed")
	}
	if row == nil {
		return domain.UserDetailOutput{}, perr.Newf(perr.ErrorCodeNotFound, "user %q not found", login)
	}

	detail := domain.UserDetail{
		Login:           row.Login,
		Name:            row.Name,
		AvatarURL:       row.AvatarURL,
		HTMLURL:         row.HTMLURL,
		Type:            row.Type,
		Bio:             row.Bio,
		Location:        row.Location,
		Email:           row.Email,
		Company:         row.Company,
		Blog:            row.Blog,
		TwitterUsername: row.TwitterUsername,
		Hireable:        row.Hireable,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		Followers:       row.Followers,
		Following:       row.Following,
		PublicRepos:     row.PublicRepos,
		LanguageStats:   []domain.UserLanguageStat{},
	}

	stats, err := s.Repo.StatsFunc(ctx, login)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("get_user_stats unavailable, using join fallback")
		stats, err = s.Repo.StatsJoin(ctx, login)
		if err != nil {
			return domain.UserDetailOutput{}, perr.FromPostgres(err, "user stats lookup failed")
		}
	}
	if len(stats) > 0 {
		st := stats[0]
		detail.TotalReposInDB = st.TotalReposInDB
		detail.TotalStars = st.TotalStars
		detail.AvgStars = st.AvgStars
		detail.TopLanguage = st.TopLanguage
		detail.LanguagesCount = st.LanguagesCount
		detail.LastRepoUpdate = st.LastRepoUpdate
	}

	langs, err := s.Repo.LangStatsFunc(ctx, login)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("get_language_stats_by_user unavailable, using group-by fallback")
		langs, err = s.Repo.LangStatsJoin(ctx, login)
	}
	if err != nil {
		// the breakdown is decorative on the profile page
		logger.C(ctx).Warn().Err(err).Str("login", login).Msg("language breakdown unavailable")
	} else {
		for _, l := range langs {
			detail.LanguageStats = append(detail.LanguageStats, domain.UserLanguageStat{
				Language:   l.Language,
				RepoCount:  l.RepoCount,
				TotalStars: l.TotalStars,
				AvgStars:   l.AvgStars,
			})
		}
	}

	return domain.UserDetailOutput{User: detail}, nil
}

func repoToDomain(r repo.RepoRow) domain.UserRepo {
	return domain.UserRepo{
		ID:              r.ID,
		GithubID:        r.GithubID,
		Name:            r.Name,
		FullName:        r.FullName,
		HTMLURL:         r.HTMLURL,
		Description:     r.Description,
		ZhDescription:   r.ZhDescription,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		PushedAt:        r.PushedAt,
		Size:            r.Size,
		StargazersCount: r.StargazersCount,
		Language:        r.Language,
		Topics:          r.Topics,
		Owner:           r.Owner,
		ReadmeContent:   r.ReadmeContent,
	}
}

// UserRepos returns one page of login's repositories with the total and
// the applied filters echoed back. The page and count fetch concurrently
func (s *Svc) UserRepos(ctx context.Context, login string, in domain.UserReposInput) (domain.UserReposOutput, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return domain.UserReposOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "login is required"), "login",
		)
	}

	ok, err := s.Repo.Exists(ctx, login)
	if err != nil {
		return domain.UserReposOutput{}, perr.FromPostgres(err, "user lookup failed")
	}
	if !ok {
		return domain.UserReposOutput{}, perr.Newf(perr.ErrorCodeNotFound, "user %q not found", login)
	}

	p := repo.UserReposParams{
		Login:    login,
		Language: in.Language,
		MinStars: in.MinStars,
		Sort:     in.Sort,
		Order:    in.Order,
		Limit:    in.Limit,
		Offset:   in.Offset,
	}
	if p.Sort == "" {
		p.Sort = "stars"
	}
	if p.Order == "" {
		p.Order = "desc"
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	var (
		rows  []repo.RepoRow
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.Repo.UserReposFunc(gctx, p)
		if err != nil {
			logger.C(gctx).Warn().Err(err).Msg("get_user_repositories unavailable, using join fallback")
			rows, err = s.Repo.UserReposJoin(gctx, p)
		}
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.UserReposCount(gctx, login, p.Language, p.MinStars)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserReposOutput{}, perr.FromPostgres(err, "user repositories lookup failed")
	}

	out := domain.UserReposOutput{
		Repositories: make([]domain.UserRepo, 0, len(rows)),
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.Offset+len(rows) < total,
		},
		Filters: domain.UserReposFilters{
			Language: p.Language,
			MinStars: p.MinStars,
			Sort:     p.Sort,
			Order:    p.Order,
		},
	}
	for _, r := range rows {
		out.Repositories = append(out.Repositories, repoToDomain(r))
	}
	return out, nil
}

// Repos returns one page of the corpus-wide repository listing joined with
// owners. Total is a real count over the same filter set
func (s *Svc) Repos(ctx context.Context, in domain.ReposInput) (domain.ReposOutput, error) {
	p := repo.ListParams{
		MinStars:  in.MinStars,
		Language:  in.Language,
		UserType:  in.UserType,
		UserLogin: in.UserLogin,
		Sort:      in.Sort,
		Order:     in.Order,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if p.Sort == "" {
		p.Sort = "stars"
	}
	if p.Order == "" {
		p.Order = "desc"
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	var (
		rows  []repo.RepoUserRow
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.Repo.List(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.ListCount(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ReposOutput{}, perr.FromPostgres(err, "repository listing failed")
	}

	out := domain.ReposOutput{
		Repositories: make([]domain.RepoWithUser, 0, len(rows)),
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   p.Limit,
			Offset:  p.Offset,
			HasMore: p.Offset+len(rows) < total,
		},
	}
	for _, r := range rows {
		out.Repositories = append(out.Repositories, domain.RepoWithUser{
			UserRepo: repoToDomain(r.RepoRow),
			User: domain.RepoOwner{
				Login:     r.OwnerLogin,
				Name:      r.OwnerName,
				AvatarURL: r.OwnerAvatar,
				Type:      r.OwnerType,
			},
		})
	}
	return out, nil
}
