// Package service contains the topic query workflows
package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"trendboard/internal/core/aggregate"
	"trendboard/internal/modkit/repokit"
	perr "trendboard/internal/platform/errors"
	"trendboard/internal/services/api/topics/domain"
	"trendboard/internal/services/api/topics/repo"
)

// Service defines the topics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the topics service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a topics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("topics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("topics.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns the distinct topics across the corpus ordered by usage.
// Counting happens in process over the raw arrays so each array element
// counts once and total reflects distinct topics
func (s *Svc) List(ctx context.Context, in domain.TopicsInput) (domain.TopicsOutput, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	lists, err := s.Repo.TopicLists(ctx)
	if err != nil {
		return domain.TopicsOutput{}, perr.FromPostgres(err, "topic scan failed")
	}
	counts := aggregate.CountTopics(lists)

	offset := (page - 1) * pageSize
	pageRows := counts[min(offset, len(counts)):min(offset+pageSize, len(counts))]

	out := domain.TopicsOutput{
		Data:     make([]domain.Topic, 0, len(pageRows)),
		Total:    len(counts),
		Page:     page,
		PageSize: pageSize,
	}
	for _, c := range pageRows {
		out.Data = append(out.Data, domain.Topic{
			Name:        c.Name,
			DisplayName: c.DisplayName,
			Count:       c.Count,
		})
	}
	return out, nil
}

// Repos returns one page of repositories tagged with topic plus facet lists.
// The count, page and facets fetch concurrently
func (s *Svc) Repos(ctx context.Context, topic string, in domain.TopicReposInput) (domain.TopicReposOutput, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return domain.TopicReposOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "topic is required"), "topic",
		)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	// the handler accepts the literal "all" for both filters
	language := in.Language
	if language == "all" {
		language = ""
	}
	date := in.Date
	if date == "all" {
		date = ""
	}

	f := repo.Filter{
		Topic:    topic,
		Language: language,
		Date:     date,
		Limit:    pageSize,
		Offset:   (page - 1) * pageSize,
	}

	var (
		rows      []repo.Row
		total     int
		languages []string
		dates     []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.Repo.ReposByTopic(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.CountByTopic(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		languages, err = s.Repo.LanguagesForTopic(gctx, topic)
		return err
	})
	g.Go(func() error {
		var err error
		dates, err = s.Repo.DatesForTopic(gctx, topic)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.TopicReposOutput{}, perr.FromPostgres(err, "topic listing failed")
	}

	out := domain.TopicReposOutput{
		Data:      make([]domain.TopicRepo, 0, len(rows)),
		Total:     total,
		Topic:     topic,
		Languages: languages,
		Dates:     dates,
		Page:      page,
		PageSize:  pageSize,
	}
	for _, r := range rows {
		out.Data = append(out.Data, domain.TopicRepo{
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
			AddedAt:         r.AddedAt,
		})
	}
	return out, nil
}
