// Package api provides the HTTP API for the application
package api

import (
	"trendboard/internal/platform/config"
	"trendboard/internal/platform/logger"
	phttp "trendboard/internal/platform/net/http"
	"trendboard/internal/platform/store"

	"trendboard/internal/modkit"
	"trendboard/internal/modkit/httpkit"
	"trendboard/internal/modkit/module"
	"trendboard/internal/modkit/swaggerkit"

	metamod "trendboard/internal/services/api/meta/module"
	readmemod "trendboard/internal/services/api/readme/module"
	searchmod "trendboard/internal/services/api/search/module"
	topicsmod "trendboard/internal/services/api/topics/module"
	trendsmod "trendboard/internal/services/api/trends/module"
	usersmod "trendboard/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		metamod.New(deps),
		trendsmod.New(deps),
		searchmod.New(deps),
		topicsmod.New(deps),
		usersmod.New(deps),
		readmemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
