package vets

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

func TestVetRequiresOnlyName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Form{})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{"name": "Por favor ingrese un nombre"}, shared.FieldsOf(err))

	id, err := svc.Create(ctx, Form{Name: "Dra. Gómez"})
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dra. Gómez", got.Name)
	assert.Empty(t, got.Email)
}

func TestVetEmailCheckedWhenPresent(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), Form{Name: "Dra. Gómez", Email: "gomez"})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, "Por favor ingrese un email valido", shared.FieldsOf(err)["email"])
}

func TestVetUpdateDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, Form{Name: "Dra. Gómez", Specialty: "Cirugía"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, Form{Name: "Dr. Pérez", Email: "perez@vet.com", Phone: "221000111", Specialty: "Dermatología"}))
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Pérez", got.Name)
	assert.Equal(t, "perez@vet.com", got.Email)
	assert.Equal(t, "221000111", got.Phone)
	assert.Equal(t, "Dermatología", got.Specialty)

	require.NoError(t, svc.Delete(ctx, id))
	assert.ErrorIs(t, svc.Delete(ctx, id), shared.ErrNotFound)
}
