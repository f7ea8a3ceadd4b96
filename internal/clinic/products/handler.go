package products

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
	products, err := h.service.List(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list products", err)
		return
	}
	h.render(w, r, "pages/products_list.html", map[string]any{
		"Products": products,
	}, http.StatusOK)
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	form := Form{}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := shared.ParseID(raw)
		if err != nil {
			h.pages.Fail(w, r, "edit product", err)
			return
		}
		product, err := h.service.Get(r.Context(), id)
		if err != nil {
			h.pages.Fail(w, r, "edit product", err)
			return
		}
		form = FormFromProduct(product)
	}
	h.renderForm(w, r, form, shared.FieldErrors{}, http.StatusOK)
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
			h.renderForm(w, r, form, shared.FieldsOf(err), http.StatusBadRequest)
			return
		}
		h.pages.Fail(w, r, "save product", err)
		return
	}

	h.pages.RedirectWithFlash(w, r, "/products", "success", "Producto guardado correctamente")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	id, err := shared.ParseID(r.PostFormValue("product_id"))
	if err != nil {
		h.pages.Fail(w, r, "delete product", err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.pages.Fail(w, r, "delete product", err)
		return
	}
	h.pages.RedirectWithFlash(w, r, "/products", "success", "Producto eliminado correctamente")
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form Form, errs shared.FieldErrors, status int) {
	providers, err := h.service.ProviderOptions(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list providers", err)
		return
	}
	h.render(w, r, "pages/product_form.html", map[string]any{
		"Form":      form,
		"Errors":    errs,
		"Providers": providers,
	}, status)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template string, data map[string]any, status int) {
	h.pages.Render(w, r, template, "Productos", data, status)
}
