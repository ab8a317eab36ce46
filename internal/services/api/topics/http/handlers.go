// Package http provides http transport for topics
package http

import (
	stdhttp "net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/services/api/topics/domain"
	svc "trendboard/internal/services/api/topics/service"
)

// Register mounts the topic endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetQuery[domain.TopicsInput](r, "/", h.list)
	httpkit.GetQuery[domain.TopicReposInput](r, "/{topic}", h.repos)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /topics Topics topicsList
// @Summary Distinct topics ordered by usage
// @Tags Topics
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page, max 100"
// @Success 200 {object} domain.TopicsOutput "ok"
// @Router /topics [get]
func (h *handlers) list(r *stdhttp.Request, in domain.TopicsInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /topics/{topic} Topics topicsRepos
// @Summary Repositories tagged with a topic
// @Tags Topics
// @Produce json
// @Param topic path string true "Topic name"
// @Param language query string false "Exact language filter, or all"
// @Param date query string false "Creation date YYYY-MM-DD, or all"
// @Param page query int false "Page number"
// @Param pageSize query int false "Rows per page, max 100"
// @Success 200 {object} domain.TopicReposOutput "ok"
// @Router /topics/{topic} [get]
func (h *handlers) repos(r *stdhttp.Request, in domain.TopicReposInput) (any, error) {
	topic := chi.URLParam(r, "topic")
	if unescaped, err := url.PathUnescape(topic); err == nil {
		topic = unescaped
	}
	return h.svc.Repos(r.Context(), topic, in)
}
