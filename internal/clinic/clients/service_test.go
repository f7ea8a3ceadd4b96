package clients

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

func juan() Form {
	return Form{
		Name:    "Juan Sebastián Veron",
		Phone:   "221555232",
		Email:   "brujita75@hotmail.com",
		Address: "13 y 44",
	}
}

func TestCreateRequiresNamePhoneEmail(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, Form{Name: "  ", Phone: "", Email: ""})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{
		"name":  "Por favor ingrese un nombre",
		"phone": "Por favor ingrese un teléfono",
		"email": "Por favor ingrese un email",
	}, shared.FieldsOf(err))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateRejectsMalformedEmail(t *testing.T) {
	svc := newService(t)
	form := juan()
	form.Email = "brujita75"

	_, err := svc.Create(context.Background(), form)
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{"email": "Por favor ingrese un email valido"}, shared.FieldsOf(err))
}

func TestCreateThenGet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, juan())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Juan Sebastián Veron", got.Name)
	assert.Equal(t, "221555232", got.Phone)
	assert.Equal(t, "brujita75@hotmail.com", got.Email)
	assert.Equal(t, "13 y 44", got.Address)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUpdateReplacesEveryField(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, juan())
	require.NoError(t, err)

	err = svc.Update(ctx, id, Form{
		Name:    "Guido Carrillo",
		Phone:   "221232555",
		Email:   "goleador@gmail.com",
		Address: "1 y 57",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Guido Carrillo", got.Name)
	assert.Equal(t, "221232555", got.Phone)
	assert.Equal(t, "goleador@gmail.com", got.Email)
	assert.Equal(t, "1 y 57", got.Address)
}

func TestUpdateMissingClient(t *testing.T) {
	svc := newService(t)
	err := svc.Update(context.Background(), 42, juan())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestUpdateValidatesInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, juan())
	require.NoError(t, err)

	err = svc.Update(ctx, id, Form{Name: "Guido"})
	require.ErrorIs(t, err, shared.ErrValidation)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Juan Sebastián Veron", got.Name)
}

func TestSaveChoosesCreateOrUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, juan())
	require.NoError(t, err)

	form := juan()
	form.ID = "1"
	form.Name = "Juan Veron"
	updated, err := svc.Save(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Juan Veron", list[0].Name)

	form.ID = "abc"
	_, err = svc.Save(ctx, form)
	assert.ErrorIs(t, err, shared.ErrInvalidID)
}

func TestDeleteThenGet(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	id, err := svc.Create(ctx, juan())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id), shared.ErrNotFound)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	first := juan()
	second := juan()
	second.Name = "Guido Carrillo"
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Juan Sebastián Veron", list[0].Name)
	assert.Equal(t, "Guido Carrillo", list[1].Name)
}
