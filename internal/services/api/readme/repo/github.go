// Package repo fetches readmes from the GitHub content API
package repo

import (
	"context"
	"net/http"
	"time"

	"github.com/google/go-github/v75/github"
	"golang.org/x/time/rate"

	perr "trendboard/internal/platform/errors"
	"trendboard/internal/platform/logger"
)

// Doc is one fetched readme file
type Doc struct {
	Name     string
	Content  string
	Encoding string
	Size     int
}

// Fetcher is the minimal fetch surface for readmes
type Fetcher interface {
	Fetch(ctx context.Context, owner, repo string) (Doc, error)
}

// GitHub fetches readmes through go-github behind a client-side limiter.
// GitHub allows 5000 requests per hour with a token and 60 without
type GitHub struct {
	gh  *github.Client
	lim *rate.Limiter
}

// NewGitHub constructs the fetcher, authenticated when token is non-empty
func NewGitHub(token string) *GitHub {
	if token != "" {
		return &GitHub{
			gh:  github.NewClient(nil).WithAuthToken(token),
			lim: rate.NewLimiter(rate.Every(time.Hour/5000), 10),
		}
	}
	logger.Get().Warn().Msg("no github token configured, readme fetches are limited to 60/hour")
	return &GitHub{
		gh:  github.NewClient(nil),
		lim: rate.NewLimiter(rate.Every(time.Minute), 1),
	}
}

// Fetch returns the decoded readme for owner/repo.
// A repository without a readme maps to a not found error
func (g *GitHub) Fetch(ctx context.Context, owner, repo string) (Doc, error) {
	if err := g.lim.Wait(ctx); err != nil {
		return Doc{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "readme rate limiter wait")
	}

	file, resp, err := g.gh.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return Doc{}, perr.Newf(perr.ErrorCodeNotFound, "no readme for %s/%s", owner, repo)
		}
		return Doc{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "github readme fetch")
	}

	content, err := file.GetContent()
	if err != nil {
		return Doc{}, perr.Wrap(err, perr.ErrorCodeUnknown, "decode readme content")
	}
	return Doc{
		Name:     file.GetName(),
		Content:  content,
		Encoding: file.GetEncoding(),
		Size:     file.GetSize(),
	}, nil
}
