// Package http provides http transport for users
package http

import (
	stdhttp "net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/services/api/users/domain"
	svc "trendboard/internal/services/api/users/service"
)

// Register mounts the user endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// per-user aggregate listing
	httpkit.GetQuery[domain.UsersInput](r, "/users", h.users)

	// one user's profile and language breakdown
	httpkit.Get(r, "/user/{login}", h.user)

	// one user's repositories
	httpkit.GetQuery[domain.UserReposInput](r, "/user/{login}/repos", h.userRepos)

	// corpus-wide repository listing joined with owners
	httpkit.GetQuery[domain.ReposInput](r, "/repos", h.repos)
}

type handlers struct{ svc svc.Service }

func pathLogin(r *stdhttp.Request) string {
	login := chi.URLParam(r, "login")
	if unescaped, err := url.PathUnescape(login); err == nil {
		login = unescaped
	}
	return login
}

// swagger:route GET /users Users usersList
// @Summary Per-user aggregates across the corpus
// @Tags Users
// @Produce json
// @Param limit query int false "Rows per page, max 100"
// @Param offset query int false "Rows to skip"
// @Param sort query string false "stars repos followers created"
// @Param order query string false "asc or desc"
// @Param type query string false "User or Organization"
// @Success 200 {object} domain.UsersOutput "ok"
// @Router /users [get]
func (h *handlers) users(r *stdhttp.Request, in domain.UsersInput) (any, error) {
	return h.svc.Users(r.Context(), in)
}

// swagger:route GET /user/{login} Users usersDetail
// @Summary One user's profile with aggregates
// @Tags Users
// @Produce json
// @Param login path string true "User login"
// @Success 200 {object} domain.UserDetailOutput "ok"
// @Failure 404 {object} httpkit.Envelope "unknown login"
// @Router /user/{login} [get]
func (h *handlers) user(r *stdhttp.Request) (any, error) {
	return h.svc.User(r.Context(), pathLogin(r))
}

// swagger:route GET /user/{login}/repos Users usersRepos
// @Summary One user's repositories
// @Tags Users
// @Produce json
// @Param login path string true "User login"
// @Param language query string false "Exact language filter"
// @Param min_stars query int false "Minimum stargazer count"
// @Param sort query string false "stars updated created pushed name"
// @Param order query string false "asc or desc"
// @Param limit query int false "Rows per page, max 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} domain.UserReposOutput "ok"
// @Failure 404 {object} httpkit.Envelope "unknown login"
// @Router /user/{login}/repos [get]
func (h *handlers) userRepos(r *stdhttp.Request, in domain.UserReposInput) (any, error) {
	return h.svc.UserRepos(r.Context(), pathLogin(r), in)
}

// swagger:route GET /repos Users reposList
// @Summary Repositories joined with their owners
// @Tags Users
// @Produce json
// @Param limit query int false "Rows per page, max 100"
// @Param offset query int false "Rows to skip"
// @Param sort query string false "stars updated created name"
// @Param order query string false "asc or desc"
// @Param min_stars query int false "Minimum stargazer count"
// @Param language query string false "Substring language filter"
// @Param user_type query string false "User or Organization"
// @Param user_login query string false "Substring login filter"
// @Success 200 {object} domain.ReposOutput "ok"
// @Router /repos [get]
func (h *handlers) repos(r *stdhttp.Request, in domain.ReposInput) (any, error) {
	return h.svc.Repos(r.Context(), in)
}
