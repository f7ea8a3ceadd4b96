package clients

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/form", h.Form)
	r.Get("/form/{id}", h.Form)
	r.Post("/form", h.Save)
	r.Post("/form/{id}", h.Save)
	r.Post("/delete", h.Delete)
}
