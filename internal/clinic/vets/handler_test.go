package vets

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/clinictest"
)

func newRouter(t *testing.T) (http.Handler, *Service) {
	t.Helper()
	svc := newService(t)
	h := NewHandler(clinictest.Pages(t), svc)
	return clinictest.Router("/vets", h.MountRoutes), svc
}

func TestVetScreens(t *testing.T) {
	router, svc := newRouter(t)

	rec := clinictest.Get(router, "/vets")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No existen veterinarios")

	rec = clinictest.PostForm(router, "/vets/form", url.Values{
		"name":      {"María López"},
		"specialty": {"Cirugía"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/vets", rec.Header().Get("Location"))

	rec = clinictest.Get(router, "/vets")
	assert.Contains(t, rec.Body.String(), "María López")
	assert.Contains(t, rec.Body.String(), "Cirugía")
	assert.Contains(t, rec.Body.String(), `name="vet_id" value="1"`)
	assert.Contains(t, rec.Body.String(), `aria-label="Formulario de eliminación de veterinario"`)

	rec = clinictest.PostForm(router, "/vets/delete", url.Values{"vet_id": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	list, err := svc.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Contains(t, clinictest.Get(router, "/vets").Body.String(), "No existen veterinarios")
}

func TestVetFormErrors(t *testing.T) {
	router, svc := newRouter(t)

	rec := clinictest.PostForm(router, "/vets/form", url.Values{
		"name":  {""},
		"email": {"mlopez"},
		"phone": {"221444111"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Por favor ingrese un nombre")
	assert.Contains(t, body, "Por favor ingrese un email valido")
	assert.Contains(t, body, `value="221444111"`)

	list, err := svc.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Equal(t, http.StatusNotFound, clinictest.Get(router, "/vets/form/3").Code)
}
