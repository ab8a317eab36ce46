// Package module provides the importer module implementation
package module

import (
	modkit "trendboard/internal/modkit"
	"trendboard/internal/modkit/repokit"

	"trendboard/internal/services/importer/domain"
	"trendboard/internal/services/importer/repo"
	"trendboard/internal/services/importer/service"
)

// Ports defines the importer module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the importer module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the importer module.
// It wires the storage binder and the service using config from deps.Cfg
// and mounts no routes
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(
		repokit.TxRunner(deps.PG), repo.NewPG(),
		service.Config{
			BatchSize: opts.BatchSize,
			Year:      opts.Year,
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "importer" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Prefix returns the module prefix (none)
func (m *Module) Prefix() string { return "" }

// MountRoutes is a no-op as the importer has no routes
func (m *Module) MountRoutes(_ interface{}) {}
