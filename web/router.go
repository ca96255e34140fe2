package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
	"github.com/yucath/fpl-minileague-dashboard/controller"
)

// routeTimeout has to cover a cold-cache page load, which fans out to
// several FPL endpoints per league member with retries on each.
const routeTimeout = 2 * time.Minute

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(routeTimeout))

	r.Get("/", rootHandler(ctrl, render))
	r.Get("/live", liveHandler(ctrl, render))
	r.Get("/stats", statsHandler(ctrl, render))
	r.Get("/preseason", preseasonHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/live", apiLiveHandler(ctrl, render))
		r.Get("/stats", apiStatsHandler(ctrl, render))
	})

	r.Get("/healthz", healthHandler(ctrl, render))

	return r
}
