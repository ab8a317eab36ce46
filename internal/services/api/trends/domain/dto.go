// Package domain holds DTOs for the trending query surface
package domain

import (
	"trendboard/internal/core/aggregate"
)

// TrendingInput filters one day of trending snapshots
type TrendingInput struct {
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
	Category string `query:"category" validate:"omitempty,oneof=all python typescript javascript jupyter vue" example:"all"`
	Period   string `query:"period" validate:"omitempty,oneof=daily weekly monthly" example:"daily"`
	Page     int    `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize int    `query:"pageSize" validate:"omitempty,min=1,max=100" example:"25"`
	Language string `query:"language" validate:"omitempty,max=100" example:"Go"`
}

// TrendingRepo is one repository row in a trending listing
type TrendingRepo struct {
	ID            int64   `json:"id" example:"42"`
	Name          string  `json:"name" example:"golang/go"`
	URL           string  `json:"url" example:"https://github.com/golang/go"`
	Description   *string `json:"description"`
	ZhDescription *string `json:"zh_description"`
	Language      *string `json:"language" example:"Go"`
	Owner         *string `json:"owner" example:"golang"`
	RepoName      *string `json:"repo_name" example:"go"`
	Stars         int64   `json:"stars" example:"120000"`
	Forks         int64   `json:"forks" example:"17000"`
	StarsToday    int64   `json:"stars_today" example:"80"`
	Rank          *int    `json:"rank" example:"4"`
	Date          string  `json:"date" example:"2024-03-01"`
	Category      string  `json:"category" example:"all"`
	Period        string  `json:"period" example:"daily"`
}

// TrendingOutput is a page of trending repos with echoed filters
type TrendingOutput struct {
	Data     []TrendingRepo `json:"data"`
	Total    int            `json:"total" example:"412"`
	Page     int            `json:"page" example:"1"`
	PageSize int            `json:"pageSize" example:"25"`
	Date     string         `json:"date" example:"2024-03-01"`
	Category string         `json:"category" example:"all"`
	Period   string         `json:"period" example:"daily"`
}

// LanguagesInput selects the date for per-language aggregates
type LanguagesInput struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
}

// LanguageStat is one language bucket for a date
type LanguageStat struct {
	Language   string `json:"language" example:"Go"`
	TotalRepos int64  `json:"total_repos" example:"15"`
	TotalStars int64  `json:"total_stars" example:"95000"`
	AvgStars   int64  `json:"avg_stars" example:"6333"`
}

// LanguagesOutput is the language stats listing with the echoed date
type LanguagesOutput struct {
	Data []LanguageStat `json:"data"`
	Date string         `json:"date" example:"2024-03-01"`
}

// DateStatsInput selects the reduction flavor and row cap
type DateStatsInput struct {
	Type  string `query:"type" validate:"omitempty,oneof=basic detailed monthly simple" example:"basic"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=365" example:"30"`
}

// DateStatsOutput wraps whichever reduction ran
type DateStatsOutput struct {
	Data  any    `json:"data"`
	Total int    `json:"total" example:"30"`
	Type  string `json:"type" example:"basic"`
	Limit int    `json:"limit" example:"30"`
}

// CategoryCoverage reports how many dates a category and period combination covers
type CategoryCoverage struct {
	Category   string `json:"category" example:"all"`
	Period     string `json:"period" example:"daily"`
	DateCount  int    `json:"dateCount" example:"180"`
	LatestDate string `json:"latestDate" example:"2024-03-01"`
}

// DBInfoOutput summarizes dataset coverage
type DBInfoOutput struct {
	AvailableDates []string           `json:"availableDates"`
	TotalDates     int                `json:"totalDates" example:"180"`
	CategoryStats  []CategoryCoverage `json:"categoryStats"`
}

// Re-exported reduction shapes so handlers and callers need one import

// BasicDateStat aliases the core reduction row
type BasicDateStat = aggregate.BasicDateStat

// DateStat aliases the core reduction row
type DateStat = aggregate.DateStat

// MonthlyStat aliases the core reduction row
type MonthlyStat = aggregate.MonthlyStat
