package module

import (
	"context"

	"trendboard/internal/services/api/readme/domain"
	readmesvc "trendboard/internal/services/api/readme/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptReadmePort struct{ svc readmesvc.Service }

// Readme returns the readme for a repository
func (a adaptReadmePort) Readme(ctx context.Context, in domain.ReadmeInput) (domain.ReadmeOutput, error) {
	return a.svc.Readme(ctx, in)
}
