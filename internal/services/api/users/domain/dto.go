// Package domain holds DTOs for the user query surface
package domain

import "time"

// UsersInput filters and sorts the user statistics listing
type UsersInput struct {
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100" example:"50"`
	Offset int    `query:"offset" validate:"omitempty,min=0" example:"0"`
	Sort   string `query:"sort" validate:"omitempty,oneof=stars repos followers created" example:"stars"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc" example:"desc"`
	Type   string `query:"type" validate:"omitempty,oneof=User Organization" example:"User"`
}

// UserStat is one user's precomputed aggregate row
type UserStat struct {
	Login            string     `json:"login" example:"torvalds"`
	Name             *string    `json:"name" example:"Linus Torvalds"`
	Type             string     `json:"type" example:"User"`
	Followers        int64      `json:"followers" example:"180000"`
	Following        int64      `json:"following" example:"0"`
	PublicRepos      int64      `json:"public_repos" example:"8"`
	TotalReposInDB   int64      `json:"total_repos_in_db" example:"6"`
	TotalStars       int64      `json:"total_stars" example:"190000"`
	AvgStars         int64      `json:"avg_stars" example:"31666"`
	TopLanguage      *string    `json:"top_language" example:"C"`
	LanguagesCount   int64      `json:"languages_count" example:"4"`
	LastRepoUpdate   *time.Time `json:"last_repo_update"`
	AccountCreatedAt *time.Time `json:"account_created_at"`
}

// UsersOutput is a page of user stats
type UsersOutput struct {
	Users   []UserStat `json:"users"`
	Total   int        `json:"total" example:"3105"`
	Limit   int        `json:"limit" example:"50"`
	Offset  int        `json:"offset" example:"0"`
	HasMore bool       `json:"has_more" example:"true"`
}

// UserLanguageStat is one language bucket scoped to a user
type UserLanguageStat struct {
	Language   string `json:"language" example:"C"`
	RepoCount  int64  `json:"repo_count" example:"3"`
	TotalStars int64  `json:"total_stars" example:"185000"`
	AvgStars   int64  `json:"avg_stars" example:"61666"`
}

// UserDetail is the full profile plus aggregates and language breakdown
type UserDetail struct {
	Login           string     `json:"login" example:"torvalds"`
	Name            *string    `json:"name"`
	AvatarURL       *string    `json:"avatar_url"`
	HTMLURL         *string    `json:"html_url"`
	Type            string     `json:"type" example:"User"`
	Bio             *string    `json:"bio"`
	Location        *string    `json:"location"`
	Email           *string    `json:"email"`
	Company         *string    `json:"company"`
	Blog            *string    `json:"blog"`
	TwitterUsername *string    `json:"twitter_username"`
	Hireable        *bool      `json:"hireable"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`

	Followers      int64      `json:"followers" example:"180000"`
	Following      int64      `json:"following" example:"0"`
	PublicRepos    int64      `json:"public_repos" example:"8"`
	TotalReposInDB int64      `json:"total_repos_in_db" example:"6"`
	TotalStars     int64      `json:"total_stars" example:"190000"`
	AvgStars       int64      `json:"avg_stars" example:"31666"`
	TopLanguage    *string    `json:"top_language" example:"C"`
	LanguagesCount int64      `json:"languages_count" example:"4"`
	LastRepoUpdate *time.Time `json:"last_repo_update"`

	LanguageStats []UserLanguageStat `json:"language_stats"`
}

// UserDetailOutput wraps the detail row
type UserDetailOutput struct {
	User UserDetail `json:"user"`
}

// UserReposInput filters and sorts one user's repositories
type UserReposInput struct {
	Language string `query:"language" validate:"omitempty,max=100" example:"C"`
	MinStars int    `query:"min_stars" validate:"omitempty,min=0" example:"100"`
	Sort     string `query:"sort" validate:"omitempty,oneof=stars updated created pushed name" example:"stars"`
	Order    string `query:"order" validate:"omitempty,oneof=asc desc" example:"desc"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100" example:"20"`
	Offset   int    `query:"offset" validate:"omitempty,min=0" example:"0"`
}

// UserRepo is one user_repositories row
type UserRepo struct {
	ID              int64      `json:"id" example:"7"`
	GithubID        int64      `json:"github_id" example:"2325298"`
	Name            string     `json:"name" example:"linux"`
	FullName        string     `json:"full_name" example:"torvalds/linux"`
	HTMLURL         string     `json:"html_url" example:"https://github.com/torvalds/linux"`
	Description     *string    `json:"description"`
	ZhDescription   *string    `json:"zh_description"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at"`
	Size            int64      `json:"size" example:"4500000"`
	StargazersCount int64      `json:"stargazers_count" example:"185000"`
	Language        *string    `json:"language" example:"C"`
	Topics          []string   `json:"topics"`
	Owner           string     `json:"owner" example:"torvalds"`
	ReadmeContent   *string    `json:"readme_content"`
}

// Pagination is the offset and limit pagination block
type Pagination struct {
	Total   int  `json:"total" example:"6"`
	Limit   int  `json:"limit" example:"20"`
	Offset  int  `json:"offset" example:"0"`
	HasMore bool `json:"has_more" example:"false"`
}

// UserReposFilters echoes the applied filters
type UserReposFilters struct {
	Language string `json:"language,omitempty" example:"C"`
	MinStars int    `json:"min_stars" example:"100"`
	Sort     string `json:"sort" example:"stars"`
	Order    string `json:"order" example:"desc"`
}

// UserReposOutput is a page of one user's repositories
type UserReposOutput struct {
	Repositories []UserRepo       `json:"repositories"`
	Pagination   Pagination       `json:"pagination"`
	Filters      UserReposFilters `json:"filters"`
}

// ReposInput filters and sorts the joined repo and owner listing
type ReposInput struct {
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100" example:"20"`
	Offset    int    `query:"offset" validate:"omitempty,min=0" example:"0"`
	Sort      string `query:"sort" validate:"omitempty,oneof=stars updated created name" example:"stars"`
	Order     string `query:"order" validate:"omitempty,oneof=asc desc" example:"desc"`
	MinStars  int    `query:"min_stars" validate:"omitempty,min=0" example:"0"`
	Language  string `query:"language" validate:"omitempty,max=100" example:"Go"`
	UserType  string `query:"user_type" validate:"omitempty,oneof=User Organization" example:"Organization"`
	UserLogin string `query:"user_login" validate:"omitempty,max=100" example:"golang"`
}

// RepoOwner is the owning user embedded in a repo listing row
type RepoOwner struct {
	Login     string  `json:"login" example:"golang"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Type      string  `json:"type" example:"Organization"`
}

// RepoWithUser is one repository row joined with its owner
type RepoWithUser struct {
	UserRepo

	User RepoOwner `json:"user"`
}

// ReposOutput is a page of the joined listing
type ReposOutput struct {
	Repositories []RepoWithUser `json:"repositories"`
	Pagination   Pagination     `json:"pagination"`
}
