package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/clinictest"
	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryRepository(), clinictest.Validator())
}

func TestProviderRequiredFields(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), Form{})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{
		"name":  "Por favor ingrese un nombre",
		"email": "Por favor ingrese un email",
	}, shared.FieldsOf(err))
}

func TestProviderAddressCheckedOnCreateAndUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Form{Name: "Distribuidora Sur", Email: "ventas@sur.com", Address: "12"})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "Por favor ingrese una dirección válida", shared.FieldsOf(err)["address"])

	id, err := svc.Create(ctx, Form{Name: "Distribuidora Sur", Email: "ventas@sur.com", Address: "Calle 7 nro 1200"})
	require.NoError(t, err)

	err = svc.Update(ctx, id, Form{Name: "Distribuidora Sur", Email: "ventas@sur.com", Address: "999"})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "Por favor ingrese una dirección válida", shared.FieldsOf(err)["address"])

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Calle 7 nro 1200", got.Address)
}

func TestProviderAddressOptional(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), Form{Name: "Distribuidora Sur", Email: "ventas@sur.com"})
	assert.NoError(t, err)
}
