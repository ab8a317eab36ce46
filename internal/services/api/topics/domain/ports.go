package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in TopicsInput) (TopicsOutput, error)
	Repos(ctx context.Context, topic string, in TopicReposInput) (TopicReposOutput, error)
}
