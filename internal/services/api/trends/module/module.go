// Package module wires trends into the API using modkit
package module

import (
	"net/http"

	modkit "trendboard/internal/modkit"
	"trendboard/internal/modkit/httpkit"
	str "trendboard/internal/platform/strings"
	trendshttp "trendboard/internal/services/api/trends/http"
	trendsrepo "trendboard/internal/services/api/trends/repo"
	trendssvc "trendboard/internal/services/api/trends/service"
)

// Module implements the trends module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc trendssvc.Service
}

// New constructs the trends module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("trends"), modkit.WithPrefix("/trending")}, opts...)...)

	repo := trendsrepo.NewPG()
	svc := trendssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptTrendsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		trendshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
// trends owns several sibling top-level paths so it mounts in a group
// rather than under a single prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Group(func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
