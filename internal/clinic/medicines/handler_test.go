package medicines

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/clinictest"
)

func TestMedicineScreens(t *testing.T) {
	svc := newService(t)
	router := clinictest.Router("/medicines", NewHandler(clinictest.Pages(t), svc).MountRoutes)

	rec := clinictest.Get(router, "/medicines")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No existen medicamentos")

	rec = clinictest.PostForm(router, "/medicines/form", url.Values{
		"name": {"Amoxicilina"}, "description": {"Antibiótico"}, "dose": {"13"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "La dosis debe estar en un rango de 1 a 10")
	assert.Contains(t, rec.Body.String(), `value="13"`)

	rec = clinictest.PostForm(router, "/medicines/form", url.Values{
		"name": {"Amoxicilina"}, "description": {"Antibiótico"}, "dose": {"3"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = clinictest.Get(router, "/medicines")
	assert.Contains(t, rec.Body.String(), "Amoxicilina")
	assert.NotContains(t, rec.Body.String(), "No existen medicamentos")

	rec = clinictest.PostForm(router, "/medicines/delete", url.Values{"medicine_id": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/medicines", rec.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, clinictest.Get(router, "/medicines/form/1").Code)
}
