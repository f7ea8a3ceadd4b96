package clients

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
	clients, err := h.service.List(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list clients", err)
		return
	}
	h.render(w, r, "pages/clients_list.html", map[string]any{
		"Clients": clients,
	}, http.StatusOK)
}

// Form shows an empty form, or the stored client when the URL names one.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	form := Form{}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := shared.ParseID(raw)
		if err != nil {
			h.pages.Fail(w, r, "edit client", err)
			return
		}
		client, err := h.service.Get(r.Context(), id)
		if err != nil {
			h.pages.Fail(w, r, "edit client", err)
			return
		}
		form = FormFromClient(client)
	}
	h.render(w, r, "pages/client_form.html", map[string]any{
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
			h.render(w, r, "pages/client_form.html", map[string]any{
				"Form":   form,
				"Errors": shared.FieldsOf(err),
			}, http.StatusBadRequest)
			return
		}
		h.pages.Fail(w, r, "save client", err)
		return
	}

	h.pages.RedirectWithFlash(w, r, "/clients", "success", "Cliente guardado correctamente")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	id, err := shared.ParseID(r.PostFormValue("client_id"))
	if err != nil {
		h.pages.Fail(w, r, "delete client", err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.pages.Fail(w, r, "delete client", err)
		return
	}
	h.pages.RedirectWithFlash(w, r, "/clients", "success", "Cliente eliminado correctamente")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template string, data map[string]any, status int) {
	h.pages.Render(w, r, template, "Clientes", data, status)
}
