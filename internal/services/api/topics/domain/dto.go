// Package domain holds DTOs for the topic query surface
package domain

import "time"

// TopicsInput pages the distinct topic listing
type TopicsInput struct {
	Page     int `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize int `query:"pageSize" validate:"omitempty,min=1,max=100" example:"50"`
}

// Topic is one distinct topic with its usage count
type Topic struct {
	Name        string `json:"name" example:"machine-learning"`
	DisplayName string `json:"display_name" example:"Machine Learning"`
	Count       int    `json:"count" example:"87"`
}

// TopicsOutput is a page of the topic listing
// Total counts distinct topics, not repositories
type TopicsOutput struct {
	Data     []Topic `json:"data"`
	Total    int     `json:"total" example:"1340"`
	Page     int     `json:"page" example:"1"`
	PageSize int     `json:"pageSize" example:"50"`
}

// TopicReposInput filters repositories under one topic
type TopicReposInput struct {
	Language string `query:"language" validate:"omitempty,max=100" example:"Python"`
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02|eq=all" example:"2024-03-01"`
	Page     int    `query:"page" validate:"omitempty,min=1" example:"1"`
	PageSize int    `query:"pageSize" validate:"omitempty,min=1,max=100" example:"20"`
}

// TopicRepo is one repository row from the topic corpus
type TopicRepo struct {
	ID              int64      `json:"id" example:"7"`
	GithubID        int64      `json:"github_id" example:"10270250"`
	Name            string     `json:"name" example:"react"`
	FullName        string     `json:"full_name" example:"facebook/react"`
	HTMLURL         string     `json:"html_url" example:"https://github.com/facebook/react"`
	Description     *string    `json:"description"`
	ZhDescription   *string    `json:"zh_description"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at"`
	Size            int64      `json:"size" example:"312456"`
	StargazersCount int64      `json:"stargazers_count" example:"220000"`
	Language        *string    `json:"language" example:"JavaScript"`
	Topics          []string   `json:"topics"`
	Owner           string     `json:"owner" example:"facebook"`
	ReadmeContent   *string    `json:"readme_content"`
	AddedAt         time.Time  `json:"added_at"`
}

// TopicReposOutput is a page of repositories under a topic plus its facets
type TopicReposOutput struct {
	Data      []TopicRepo `json:"data"`
	Total     int         `json:"total" example:"87"`
	Topic     string      `json:"topic" example:"machine-learning"`
	Languages []string    `json:"languages"`
	Dates     []string    `json:"dates"`
	Page      int         `json:"page" example:"1"`
	PageSize  int         `json:"pageSize" example:"20"`
}
