// Package domain holds types and ports for the offline importer
package domain

import "time"

// FileMapping binds a jsonl filename prefix to its category and period
type FileMapping struct {
	Prefix   string
	Category string
	Period   string
}

// FileMappings is the fixed scrape output layout, one file per category and period.
// Filenames are "<prefix>_list.jsonl" under the data directory
var FileMappings = []FileMapping{
	{Prefix: "00_alldaily", Category: "all", Period: "daily"},
	{Prefix: "01_allweekly", Category: "all", Period: "weekly"},
	{Prefix: "02_allmonthly", Category: "all", Period: "monthly"},
	{Prefix: "03_daily", Category: "python", Period: "daily"},
	{Prefix: "04_weekly", Category: "python", Period: "weekly"},
	{Prefix: "05_monthly", Category: "python", Period: "monthly"},
	{Prefix: "06_tsdaily", Category: "typescript", Period: "daily"},
	{Prefix: "07_tsweekly", Category: "typescript", Period: "weekly"},
	{Prefix: "08_tsmonthly", Category: "typescript", Period: "monthly"},
	{Prefix: "09_jsdaily", Category: "javascript", Period: "daily"},
	{Prefix: "10_jsweekly", Category: "javascript", Period: "weekly"},
	{Prefix: "11_jsmonthly", Category: "javascript", Period: "monthly"},
	{Prefix: "12_jupyterdaily", Category: "jupyter", Period: "daily"},
	{Prefix: "13_jupyterweekly", Category: "jupyter", Period: "weekly"},
	{Prefix: "14_jupytermonthly", Category: "jupyter", Period: "monthly"},
	{Prefix: "15_vuedaily", Category: "vue", Period: "daily"},
	{Prefix: "16_vueweekly", Category: "vue", Period: "weekly"},
	{Prefix: "17_vuemonthly", Category: "vue", Period: "monthly"},
}

// TrendingEntry is one scraped repository row inside a day block.
// Counts arrive as display strings, e.g. "1,217" and "1,217 stars today"
type TrendingEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	ZhDes       string `json:"zh_des"`
	Language    string `json:"language"`
	Stars       string `json:"stars"`
	Forks       string `json:"forks"`
	StarsToday  string `json:"stars_today"`
}

// RepoRecord is the repositories upsert payload, keyed by name
type RepoRecord struct {
	Name          string
	URL           string
	Description   string
	ZhDescription string
	Language      string
	Owner         string
	RepoName      string
}

// SnapshotRecord is the trending_data upsert payload, keyed by
// (repository_id, date, category, period)
type SnapshotRecord struct {
	RepositoryID int64
	Date         string
	Category     string
	Period       string
	Stars        int
	Forks        int
	StarsToday   int
	Rank         int
}

// TopicRepoRecord is the topic_repositories upsert payload, keyed by github_id.
// The field tags match the topic dump JSON shape
type TopicRepoRecord struct {
	GithubID        int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	HTMLURL         string     `json:"html_url"`
	Description     *string    `json:"description"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	PushedAt        *time.Time `json:"pushed_at"`
	Size            int64      `json:"size"`
	StargazersCount int64      `json:"stargazers_count"`
	Language        *string    `json:"language"`
	Topics          []string   `json:"topics"`
	Owner           string     `json:"owner"`
	Readme          *string    `json:"readme"`
}

// FileSummary reports one processed trending file
type FileSummary struct {
	File     string
	Category string
	Period   string
	Dates    int
	Rows     int
	Skipped  int
}

// RunSummary reports one import run
type RunSummary struct {
	RunID   string
	Files   []FileSummary
	Rows    int
	Elapsed time.Duration
}
