package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// registered before the mounted subrouters so they inherit it
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/verify-2fa", h.verifyTwoFA)
		r.Post("/api/auth/logout", h.logout)
		// resolves the session itself so it can answer with a null user
		r.Get("/api/auth/check", h.checkAuth)
	})

	// routes behind the cookie session guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/admins", h.listAdmins)
		r.Put("/api/auth/profile", h.updateOwnProfile)
		r.Put("/api/auth/profile/{id}", h.updateProfile)
		r.Delete("/api/auth/del/{id}", h.deleteUser)
	})

	// mounted subrouters so the bare prefix and the trailing-slash form
	// both reach the list handlers
	router.Route("/api/employees", func(r chi.Router) {
		r.Get("/", h.listEmployees)
		r.Get("/{matricule}", h.getEmployee)
		r.Post("/add", h.addEmployee)
		r.Put("/maj", h.updateEmployee)
		r.Delete("/del/{matricule}", h.deleteEmployee)
	})

	router.Route("/api/bureau", func(r chi.Router) {
		r.Get("/", h.listBureaux)
		r.Get("/grouped", h.listBureauxGrouped)
		r.Get("/{numero}", h.getBureau)
		r.Post("/add", h.addBureau)
		r.Put("/maj", h.updateBureau)
		r.Delete("/del/{numero}", h.deleteBureau)
	})

	router.Route("/api/affectations", func(r chi.Router) {
		r.Get("/", h.listAssignments)
		r.Post("/add", h.addAssignment)
		r.Put("/maj/{matricule}/{numero}", h.updateAssignment)
		r.Delete("/del/{matricule}/{numero}", h.deleteAssignment)
	})

	return router
}
