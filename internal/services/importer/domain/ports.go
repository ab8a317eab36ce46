package domain

import "context"

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	// RunTrending imports every recognized jsonl file under dir
	RunTrending(ctx context.Context, dir string) (RunSummary, error)

	// RunTopics imports one topic repository JSON dump
	RunTopics(ctx context.Context, path string) (RunSummary, error)
}

// StorageRepo is the storage repository interface
type StorageRepo interface {
	// UpsertRepository inserts or refreshes a repository by name and returns its id
	UpsertRepository(ctx context.Context, rec RepoRecord) (int64, error)

	// UpsertSnapshots inserts or refreshes a batch of trending rows
	UpsertSnapshots(ctx context.Context, rows []SnapshotRecord) (int, error)

	// UpsertTopicRepos inserts or refreshes a batch of topic repositories
	UpsertTopicRepos(ctx context.Context, rows []TopicRepoRecord) (int, error)
}
