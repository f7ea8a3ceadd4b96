package pets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
)

type Handler struct {
	pages   *shared.Pages
	service *Service
}

func NewHandler(pages *shared.Pages, service *Service) *Handler {
	return &Handler{pages: pages, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.service.List(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list pets", err)
		return
	}
	h.render(w, r, "pages/pets_list.html", map[string]any{
		"Pets": pets,
	}, http.StatusOK)
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	form := Form{}
	if raw := chi.URLParam(r, "id"); raw != "" {
		id, err := shared.ParseID(raw)
		if err != nil {
			h.pages.Fail(w, r, "edit pet", err)
			return
		}
		pet, err := h.service.Get(r.Context(), id)
		if err != nil {
			h.pages.Fail(w, r, "edit pet", err)
			return
		}
		form = FormFromPet(pet)
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
		h.pages.Fail(w, r, "save pet", err)
		return
	}

	h.pages.RedirectWithFlash(w, r, "/pets", "success", "Mascota guardada correctamente")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	id, err := shared.ParseID(r.PostFormValue("pet_id"))
	if err != nil {
		h.pages.Fail(w, r, "delete pet", err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.pages.Fail(w, r, "delete pet", err)
		return
	}
	h.pages.RedirectWithFlash(w, r, "/pets", "success", "Mascota eliminada correctamente")
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.pages.Fail(w, r, "pet history", err)
		return
	}
	history, err := h.service.History(r.Context(), id)
	if err != nil {
		h.pages.Fail(w, r, "pet history", err)
		return
	}
	h.render(w, r, "pages/pet_history.html", map[string]any{
		"Pet":       history.Pet,
		"Owner":     history.Owner,
		"Medicines": history.Medicines,
		"Vets":      history.Vets,
	}, http.StatusOK)
}

// HistoryForm loads the pet and both option lists concurrently.
func (h *Handler) HistoryForm(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.pages.Fail(w, r, "pet history form", err)
		return
	}

	var (
		pet          Pet
		medicineList []medicines.Medicine
		vetList      []vets.Vet
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		pet, err = h.service.Get(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		medicineList, err = h.service.MedicineOptions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		vetList, err = h.service.VetOptions(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.pages.Fail(w, r, "pet history form", err)
		return
	}

	h.render(w, r, "pages/pet_history_form.html", map[string]any{
		"Pet":       pet,
		"Medicines": medicineList,
		"Vets":      vetList,
		"Errors":    shared.FieldErrors{},
	}, http.StatusOK)
}

func (h *Handler) AttachHistory(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.pages.Fail(w, r, "attach history", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := h.service.AttachHistory(r.Context(), id, historyFormFromRequest(r)); err != nil {
		h.pages.Fail(w, r, "attach history", err)
		return
	}
	h.pages.RedirectWithFlash(w, r, "/pets/"+strconv.FormatInt(id, 10)+"/history", "success", "Historial actualizado correctamente")
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, form Form, errs shared.FieldErrors, status int) {
	clients, err := h.service.ClientOptions(r.Context())
	if err != nil {
		h.pages.Fail(w, r, "list clients", err)
		return
	}
	h.render(w, r, "pages/pet_form.html", map[string]any{
		"Form":    form,
		"Errors":  errs,
		"Clients": clients,
	}, status)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, template string, data map[string]any, status int) {
	h.pages.Render(w, r, template, "Mascotas", data, status)
}
