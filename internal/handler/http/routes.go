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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/datasets/", h.listDatasets)
		r.Get("/api/datasets/access/{tokenID}", h.access)
		r.Post("/api/datasets/finalize", h.finalize)
		r.Get("/api/datasets/download-encrypted/{cid}", h.downloadEncrypted)
		r.Get("/api/datasets/user-datasets/{walletAddress}", h.userDatasets)
	})

	// routes where authorization is optional: anonymous uploads are stored
	// under the shared anonymous account
	router.Group(func(r chi.Router) {
		r.Use(h.authOptional)

		r.Post("/api/datasets/secure-upload", h.secureUpload)
	})

	// routes with mandatory authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/", h.listUsers)
		r.Post("/api/datasets/", h.createDataset)
	})

	return router
}
