package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const staticURLPrefix = "/static/"

func buildRouter(s *stateStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// Shell pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, navDashboard.Path, http.StatusFound)
	})
	for _, target := range navTargets {
		r.Get(target.Path, s.shellPageHandler(target))
	}
	r.Get("/theme", s.themeOptionsHandler)
	r.Get("/ui/theme-switch.js", themeSwitchScriptHandler)

	// Health/info
	r.Get("/healthz", s.healthzHandler)
	r.Get("/api/v1/server-info", serverInfoHandler)

	// Theme APIs
	r.Post("/save_theme", s.saveThemeHandler)
	r.Post("/api/v1/theme/select", s.saveThemeHandler)
	r.Get("/api/v1/theme", s.resolvedThemeHandler)
	r.Get("/api/v1/theme/profiles", s.themeProfilesHandler)
	r.Get("/api/v1/theme/assets", s.themeAssetsHandler)

	// Operations feed
	r.Get("/api/v1/operations", s.operationsHandler)

	r.Handle(staticURLPrefix+"*", http.StripPrefix(staticURLPrefix, http.FileServer(http.Dir(s.staticDir))))

	return r
}
