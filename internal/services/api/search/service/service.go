// Package service contains the repository search workflow
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"trendboard/internal/core/trending"
	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/services/api/search/domain"
	"trendboard/internal/services/api/search/repo"
)

// Service defines the search service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the search service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a search service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("search.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("search.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Search returns repositories matching q scoped by searchField and filters
func (s *Svc) Search(ctx context.Context, in domain.SearchInput) (domain.SearchOutput, error) {
	q := strings.TrimSpace(in.Q)
	if q == "" {
		return domain.SearchOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "search query is required"), "q",
		)
	}

	category := in.Category
	if category == "" {
		category = string(trending.CategoryAll)
	}
	period := in.Period
	if period == "" {
		period = string(trending.PeriodDaily)
	}
	field := in.SearchField
	if field == "" {
		field = "all"
	}
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = 25
	}

	p := repo.Params{
		Field:    field,
		Pattern:  "%" + q + "%",
		Language: in.Language,
		Category: category,
		Period:   period,
		MinStars: in.MinStars,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}

	var (
		rows  []repo.Row
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.Repo.Search(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SearchOutput{}, perr.FromPostgres(err, "search query failed")
	}

	out := domain.SearchOutput{
		Data:        make([]domain.SearchRepo, 0, len(rows)),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		Query:       q,
		Language:    in.Language,
		Category:    category,
		Period:      period,
		MinStars:    in.MinStars,
		SearchField: field,
	}
	for _, r := range rows {
		out.Data = append(out.Data, domain.SearchRepo{
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
			Date:          r.Date,
			Category:      category,
			Period:        period,
		})
	}
	return out, nil
}
