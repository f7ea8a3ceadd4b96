package providers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

type Handler struct {
	pages   *shared.Pages
	service *Service
}

func NewHandler(pages *shared.Pages, service *Service) *Handler {
	return &Handler{pages: pages, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.List(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list providers", err)
		return
	}
	h.render(w, r, "pages/providers_list.html", map[string]any{
		"Providers": providers,
	}, http.StatusOK)
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	form := Form{}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := shared.ParseID(raw)
		if err != nil {
			h.pages.Fail(w, r, "edit provider", err)
			return
		}
		provider, err := h.service.Get(r.Context(), id)
		if err != nil {
			h.pages.Fail(w, r, "edit provider", err)
			return
		}
		form = FormFromProvider(provider)
	}
	h.render(w, r, "pages/provider_form.html", map[string]any{
		"Form":   form,
		"Errors": shared.FieldErrors{},
	}, http.StatusOK)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)
	if form.ID == "" {
		form.ID = chi.URLParam(r, "id")
	}

	if _, err := h.service.Save(r.Context(), form); err != nil {
		if errors.Is(err, shared.ErrValidation) {
			h.render(w, r, "pages/provider_form.html", map[string]any{
				"Form":   form,
				"Errors": shared.FieldsOf(err),
			}, http.StatusBadRequest)
			return
		}
		h.pages.Fail(w, r, "save provider", err)
		return
	}

	h.pages.RedirectWithFlash(w, r, "/providers", "success", "Proveedor guardado correctamente")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	id, err := shared.ParseID(r.PostFormValue("provider_id"))
	if err != nil {
		h.pages.Fail(w, r, "delete provider", err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.pages.Fail(w, r, "delete provider", err)
		return
	}
	h.pages.RedirectWithFlash(w, r, "/providers", "success", "Proveedor eliminado correctamente")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template string, data map[string]any, status int) {
	h.pages.Render(w, r, template, "Proveedores", data, status)
}
