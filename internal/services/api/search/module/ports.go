package module

import (
	"context"

	"trendboard/internal/services/api/search/domain"
	searchsvc "trendboard/internal/services/api/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSearchPort struct{ svc searchsvc.Service }

// Search returns repositories matching the query
func (a adaptSearchPort) Search(ctx context.Context, in domain.SearchInput) (domain.SearchOutput, error) {
	return a.svc.Search(ctx, in)
}
