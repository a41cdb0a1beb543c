package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withMetrics)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// pages
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.indexPage)
		r.Get("/index.html", h.indexPage)
		r.Get("/admin", h.adminPage)
		r.Get("/admin/", h.adminPage)
	})
	router.Get("/admin.html", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	})

	router.Get("/healthz", h.health)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// files
	router.Get("/data/*", http.NotFound)
	router.Get("/uploads/*", http.StripPrefix("/uploads", fileServer(h.uploadDir)).ServeHTTP)
	router.Get("/*", fileServer(h.staticDir).ServeHTTP)

	// public forms
	router.Group(func(r chi.Router) {
		r.Post("/apply", h.apply)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/admin/login", h.adminLogin)
		r.Post("/admin/logout", h.adminLogout)
	})

	// member area
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Post("/user/submissions/add", h.addSubmission)
	})

	// admin area
	router.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/admin/events/add", h.addEvent)
		r.Post("/admin/events/delete", h.deleteEvent)
		r.Post("/admin/videos/add", h.addVideo)
		r.Post("/admin/videos/delete", h.deleteVideo)
		r.Post("/admin/settings", h.updateSMTP)
		r.Post("/admin/plan/update", h.updatePlan)
		r.Post("/admin/applications/approve", h.approveApplication)
		r.Post("/admin/applications/delete", h.deleteApplication)
		r.Post("/admin/submissions/comment", h.commentSubmission)
		r.Post("/admin/submissions/delete", h.deleteSubmission)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
