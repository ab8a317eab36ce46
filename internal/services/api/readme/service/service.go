// Package service contains the readme proxy workflow
package service

import (
	"bytes"
	"context"
	"strings"

	"github.com/yuin/goldmark"

	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/logger"
	"trendboard/internal/services/api/readme/domain"
	"trendboard/internal/services/api/readme/repo"
)

// previewRunes is how much of the readme the preview keeps
const previewRunes = 500

// noReadmeContent stands in for repositories without a readme file
const noReadmeContent = "This repository has no README file"

// Service defines the readme service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the readme service
type Svc struct {
	fetch repo.Fetcher
	md    goldmark.Markdown
}

// New constructs a readme service
func New(fetch repo.Fetcher) *Svc {
	if fetch == nil {
		panic("readme.Service requires a non nil Fetcher")
	}
	return &Svc{fetch: fetch, md: goldmark.New()}
}

// Readme fetches owner/repo's readme and returns it raw, previewed and
// rendered. A repository without a readme is not an error for callers,
// the response carries a stand-in content with HasReadme false
func (s *Svc) Readme(ctx context.Context, in domain.ReadmeInput) (domain.ReadmeOutput, error) {
	owner := strings.TrimSpace(in.Owner)
	name := strings.TrimSpace(in.Repo)
	if owner == "" {
		return domain.ReadmeOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "owner is required"), "owner",
		)
	}
	if name == "" {
		return domain.ReadmeOutput{}, perr.WithField(
			perr.New(perr.ErrorCodeValidation, "repo is required"), "repo",
		)
	}

	doc, err := s.fetch.Fetch(ctx, owner, name)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.ReadmeOutput{
			Owner:   owner,
			Repo:    name,
			Content: noReadmeContent,
			Preview: noReadmeContent,
		}, nil
	}
	if err != nil {
		return domain.ReadmeOutput{}, err
	}

	out := domain.ReadmeOutput{
		Owner:     owner,
		Repo:      name,
		Name:      doc.Name,
		Content:   doc.Content,
		Preview:   preview(doc.Content),
		Encoding:  doc.Encoding,
		Size:      doc.Size,
		HasReadme: true,
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(doc.Content), &buf); err != nil {
		// raw content still serves without the rendered form
		logger.C(ctx).Warn().Err(err).Str("owner", owner).Str("repo", name).Msg("markdown render failed")
	} else {
		out.HTML = buf.String()
	}
	return out, nil
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewRunes {
		return content
	}
	return string(r[:previewRunes]) + "..."
}
