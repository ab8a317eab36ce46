// Package module wires the readme proxy into the API using modkit
package module

import (
	"net/http"

	modkit "trendboard/internal/modkit"
	"trendboard/internal/modkit/httpkit"
	str "trendboard/internal/platform/strings"
	readmehttp "trendboard/internal/services/api/readme/http"
	readmerepo "trendboard/internal/services/api/readme/repo"
	readmesvc "trendboard/internal/services/api/readme/service"
)

// Module implements the readme module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc readmesvc.Service
}

// New constructs the readme module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("readme"), modkit.WithPrefix("/readme")}, opts...)...)

	fetch := readmerepo.NewGitHub(deps.Cfg.MayString("GITHUB_TOKEN", ""))
	svc := readmesvc.New(fetch)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptReadmePort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		readmehttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
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
