package medicines

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

func amoxicilina(dose string) Form {
	return Form{Name: "Amoxicilina", Description: "Antibiótico de amplio espectro", Dose: dose}
}

func TestCreateRequiresEveryField(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), Form{})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{
		"name":        "Por favor ingrese un nombre",
		"description": "Por favor ingrese una descripción",
		"dose":        "Por favor ingrese una dosis",
	}, shared.FieldsOf(err))
}

func TestDoseBoundaries(t *testing.T) {
	cases := []struct {
		dose string
		msg  string
	}{
		{dose: "0", msg: "La dosis debe estar en un rango de 1 a 10"},
		{dose: "1"},
		{dose: "10"},
		{dose: "11", msg: "La dosis debe estar en un rango de 1 a 10"},
		{dose: "13", msg: "La dosis debe estar en un rango de 1 a 10"},
		{dose: "-3", msg: "La dosis debe estar en un rango de 1 a 10"},
		{dose: "3.5", msg: "La dosis debe ser un número entero"},
		{dose: "tres", msg: "La dosis debe ser un número entero"},
	}
	for _, tc := range cases {
		t.Run(tc.dose, func(t *testing.T) {
			svc := newService(t)
			_, err := svc.Create(context.Background(), amoxicilina(tc.dose))
			if tc.msg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, shared.ErrValidation)
			assert.Equal(t, tc.msg, shared.FieldsOf(err)["dose"])
		})
	}
}

func TestRejectedDoseStoresNothingThenValidDosePersists(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, amoxicilina("13"))
	require.ErrorIs(t, err, shared.ErrValidation)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	id, err := svc.Create(ctx, amoxicilina("3"))
	require.NoError(t, err)
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Dose)
	assert.Equal(t, "Amoxicilina", got.Name)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, amoxicilina("3"))
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, Form{Name: "Ivermectina", Description: "Antiparasitario", Dose: "10"}))
	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, Medicine{ID: id, Name: "Ivermectina", Description: "Antiparasitario", Dose: 10, CreatedAt: got.CreatedAt, UpdatedAt: got.UpdatedAt}, got)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
