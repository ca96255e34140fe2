package web

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/yucath/fpl-minileague-dashboard/controller"
)

func rootHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started, _, err := ctrl.SeasonStarted()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		if !started {
			http.Redirect(w, r, "/preseason", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/live", http.StatusSeeOther)
	}
}

func liveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		live, err := ctrl.LiveGameweek()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"gameweek": live.Gameweek,
			"leader":   live.Leader(),
			"managers": live.Managers,
		}
		render.HTML(w, http.StatusOK, "live", data)
	}
}

func statsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := ctrl.SeasonStatistics()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"gameweek":       overview.Gameweek,
			"managers":       overview.Managers,
			"winners":        overview.Winners,
			"winCounts":      overview.WinCounts(),
			"mostConsistent": overview.MostConsistent(),
			"highestWeek":    overview.HighestSingleWeek(),
			"weeks":          overview.GameweekColumns(),
			"matrix":         overview.PointsMatrix(),
		}
		render.HTML(w, http.StatusOK, "stats", data)
	}
}

func preseasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.Preseason()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "preseason", p)
	}
}

func apiLiveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		live, err := ctrl.LiveGameweek()
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, live)
	}
}

func apiStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := ctrl.SeasonStatistics()
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"overview": overview,
			"matrix":   overview.PointsMatrix(),
		})
	}
}

func healthHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		last := ctrl.LastUpdated()
		status := "ok"
		if last.IsZero() {
			status = "warming"
		}

		render.JSON(w, http.StatusOK, map[string]any{
			"status":      status,
			"lastUpdated": last,
		})
	}
}
