package module

import (
	"context"

	"trendboard/internal/services/api/users/domain"
	userssvc "trendboard/internal/services/api/users/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptUsersPort struct{ svc userssvc.Service }

// Users returns one page of per-user aggregates
func (a adaptUsersPort) Users(ctx context.Context, in domain.UsersInput) (domain.UsersOutput, error) {
	return a.svc.Users(ctx, in)
}

// User returns one user's profile with aggregates
func (a adaptUsersPort) User(ctx context.Context, login string) (domain.UserDetailOutput, error) {
	return a.svc.User(ctx, login)
}

// UserRepos returns one page of login's repositories
func (a adaptUsersPort) UserRepos(
	ctx context.Context,
	login string,
	in domain.UserReposInput,
) (domain.UserReposOutput, error) {
	return a.svc.UserRepos(ctx, login, in)
}

// Repos returns one page of the joined repository listing
func (a adaptUsersPort) Repos(ctx context.Context, in domain.ReposInput) (domain.ReposOutput, error) {
	return a.svc.Repos(ctx, in)
}
