package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Users(ctx context.Context, in UsersInput) (UsersOutput, error)
	User(ctx context.Context, login string) (UserDetailOutput, error)
	UserRepos(ctx context.Context, login string, in UserReposInput) (UserReposOutput, error)
	Repos(ctx context.Context, in ReposInput) (ReposOutput, error)
}
