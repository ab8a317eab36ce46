package module

import (
	"context"

	"trendboard/internal/services/api/topics/domain"
	topicssvc "trendboard/internal/services/api/topics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptTopicsPort struct{ svc topicssvc.Service }

// List returns the distinct topics ordered by usage
func (a adaptTopicsPort) List(ctx context.Context, in domain.TopicsInput) (domain.TopicsOutput, error) {
	return a.svc.List(ctx, in)
}

// Repos returns repositories tagged with topic
func (a adaptTopicsPort) Repos(
	ctx context.Context,
	topic string,
	in domain.TopicReposInput,
) (domain.TopicReposOutput, error) {
	return a.svc.Repos(ctx, topic, in)
}
