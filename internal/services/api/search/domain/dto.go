// Package domain holds DTOs for repository search
package domain

// SearchInput is the search query and its filters
// a blank q fails validation before the store is touched
type SearchInput struct {
	Q           string `query:"q" validate:"required" example:"react"`
	Language    string `query:"language" validate:"omitempty,max=100" example:"JavaScript"`
	Category    string `query:"category" validate:"omitempty,oneof=all python typescript javascript jupyter vue" example:"all"`
	Period      string `query:"period" validate:"omitempty,oneof=daily weekly monthly" example:"daily"`
	Page        int    `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize    int    `query:"pageSize" validate:"omitempty,min=1,max=100" example:"25"`
	MinStars    int    `query:"minStars" validate:"omitempty,min=0" example:"1000"`
	SearchField string `query:"searchField" validate:"omitempty,oneof=all name description owner" example:"all"`
}

// SearchRepo is one matched repository with its latest snapshot numbers
type SearchRepo struct {
	ID            int64   `json:"id" example:"42"`
	Name          string  `json:"name" example:"facebook/react"`
	URL           string  `json:"url" example:"https://github.com/facebook/react"`
	Description   *string `json:"description"`
	ZhDescription *string `json:"zh_description"`
	Language      *string `json:"language" example:"JavaScript"`
	Owner         *string `json:"owner" example:"facebook"`
	RepoName      *string `json:"repo_name" example:"react"`
	Stars         int64   `json:"stars" example:"220000"`
	Forks         int64   `json:"forks" example:"45000"`
	StarsToday    int64   `json:"stars_today" example:"200"`
	Rank          *int    `json:"rank" example:"2"`
	Date          string  `json:"date" example:"2024-03-01"`
	Category      string  `json:"category" example:"all"`
	Period        string  `json:"period" example:"daily"`
}

// SearchOutput is a page of matches with the echoed query
type SearchOutput struct {
	Data        []SearchRepo `json:"data"`
	Total       int          `json:"total" example:"12"`
	Page        int          `json:"page" example:"1"`
	PageSize    int          `json:"pageSize" example:"25"`
	Query       string       `json:"query" example:"react"`
	Language    string       `json:"language,omitempty" example:"JavaScript"`
	Category    string       `json:"category" example:"all"`
	Period      string       `json:"period" example:"daily"`
	MinStars    int          `json:"minStars" example:"1000"`
	SearchField string       `json:"searchField" example:"all"`
}
