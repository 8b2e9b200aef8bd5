// Package api provides the HTTP API for the application
package api

import (
	"crashlens/internal/platform/config"
	"crashlens/internal/platform/logger"
	phttp "crashlens/internal/platform/net/http"
	"crashlens/internal/platform/store"

	"crashlens/internal/modkit"
	"crashlens/internal/modkit/httpkit"
	"crashlens/internal/modkit/module"
	"crashlens/internal/modkit/swaggerkit"

	colmod "crashlens/internal/services/api/collisions/module"
	metamod "crashlens/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Data           *store.Snapshot
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		Data: opt.Data,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		colmod.New(deps),
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
