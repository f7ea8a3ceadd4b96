package providers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/clinictest"
)

func TestProviderScreens(t *testing.T) {
	svc := newService(t)
	router := clinictest.Router("/providers", NewHandler(clinictest.Pages(t), svc).MountRoutes)

	rec := clinictest.Get(router, "/providers")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No existen proveedores")
	assert.Contains(t, rec.Body.String(), "Nuevo proveedor")

	rec = clinictest.PostForm(router, "/providers/form", url.Values{
		"name": {"Distribuidora Sur"}, "email": {"ventas@sur.com"}, "address": {"Calle 7 nro 1200"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = clinictest.Get(router, "/providers")
	body := rec.Body.String()
	assert.Contains(t, body, "Distribuidora Sur")
	assert.Contains(t, body, `aria-label="Formulario de eliminación de proveedor"`)

	rec = clinictest.PostForm(router, "/providers/delete", url.Values{"provider_id": {"1"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, clinictest.Get(router, "/providers").Body.String(), "No existen proveedores")
}
