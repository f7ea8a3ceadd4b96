package pets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetclinic/vetclinic/internal/clinic/clients"
	"github.com/vetclinic/vetclinic/internal/clinic/clinictest"
	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
)

type fixture struct {
	clients   *clients.Service
	medicines *medicines.Service
	vets      *vets.Service
	pets      *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	v := clinictest.Validator()
	f := fixture{
		clients:   clients.NewService(clients.NewMemoryRepository(), v),
		medicines: medicines.NewService(medicines.NewMemoryRepository(), v),
		vets:      vets.NewService(vets.NewMemoryRepository(), v),
	}
	f.pets = NewService(NewMemoryRepository(), f.clients, f.medicines, f.vets, v)
	return f
}

func (f fixture) client(t *testing.T) int64 {
	t.Helper()
	id, err := f.clients.Create(context.Background(), clients.Form{Name: "Juan", Phone: "221555232", Email: "juan@mail.com"})
	require.NoError(t, err)
	return id
}

func firulais() Form {
	return Form{Name: "Firulais", Breed: "Labrador", Birthday: "2022-01-01", Weight: "130"}
}

func TestPetRequiredFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.pets.Create(context.Background(), Form{})
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{
		"name":     "Por favor ingrese un nombre",
		"breed":    "Por favor ingrese una raza",
		"birthday": "Por favor ingrese una fecha de nacimiento",
		"weight":   "Por favor ingrese un peso",
	}, shared.FieldsOf(err))
}

func TestPetNegativeWeightStoresNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := Form{Name: "Roma", Breed: "Dogo Argentino", Birthday: "2022-11-30", Weight: "-200"}

	_, err := f.pets.Create(ctx, form)
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, shared.FieldErrors{"weight": "El peso debe ser un número mayor a cero"}, shared.FieldsOf(err))

	items, err := f.pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPetWeightAndBirthdayBoundaries(t *testing.T) {
	today := clinictest.Today.Format(shared.DateLayout)
	yesterday := clinictest.Today.AddDate(0, 0, -1).Format(shared.DateLayout)

	cases := []struct {
		name     string
		birthday string
		weight   string
		field    string
		msg      string
	}{
		{name: "zero weight", birthday: yesterday, weight: "0", field: "weight", msg: "El peso debe ser un número mayor a cero"},
		{name: "tiny weight", birthday: yesterday, weight: "0.0001"},
		{name: "text weight", birthday: yesterday, weight: "pesado", field: "weight", msg: "El peso debe ser un número"},
		{name: "born today", birthday: today, weight: "3", field: "birthday", msg: "La fecha de nacimiento no puede ser mayor o igual a la fecha actual"},
		{name: "born yesterday", birthday: yesterday, weight: "3"},
		{name: "bad date", birthday: "30/11/2022", weight: "3", field: "birthday", msg: "Por favor ingrese una fecha válida"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.pets.Create(context.Background(), Form{Name: "Roma", Breed: "Dogo", Birthday: tc.birthday, Weight: tc.weight})
			if tc.msg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, shared.ErrValidation)
			assert.Equal(t, tc.msg, shared.FieldsOf(err)[tc.field])
		})
	}
}

func TestPetRoundTripWithOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clientID := f.client(t)

	form := firulais()
	form.Client = "1"
	id, err := f.pets.Create(ctx, form)
	require.NoError(t, err)

	got, err := f.pets.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Firulais", got.Name)
	assert.Equal(t, "Labrador", got.Breed)
	assert.Equal(t, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), got.Birthday)
	assert.Equal(t, 130.0, got.Weight)
	require.NotNil(t, got.ClientID)
	assert.Equal(t, clientID, *got.ClientID)

	items, err := f.pets.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Juan", items[0].OwnerName)
}

func TestPetUnknownClientWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := firulais()
	form.Client = "5"

	_, err := f.pets.Create(ctx, form)
	require.ErrorIs(t, err, shared.ErrNotFound)
	items, err := f.pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPetUpdateKeepsOwnerWhenBlank(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.client(t)
	form := firulais()
	form.Client = "1"
	id, err := f.pets.Create(ctx, form)
	require.NoError(t, err)

	require.NoError(t, f.pets.Update(ctx, id, Form{Name: "Roma", Breed: "Dogo Argentino", Birthday: "2022-11-30", Weight: "35.5"}))
	got, err := f.pets.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Roma", got.Name)
	assert.Equal(t, "Dogo Argentino", got.Breed)
	assert.Equal(t, 35.5, got.Weight)
	require.NotNil(t, got.ClientID)

	assert.ErrorIs(t, f.pets.Update(ctx, 99, firulais()), shared.ErrNotFound)
}

func TestAttachHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	petID, err := f.pets.Create(ctx, firulais())
	require.NoError(t, err)
	medID, err := f.medicines.Create(ctx, medicines.Form{Name: "Amoxicilina", Description: "Antibiótico", Dose: "3"})
	require.NoError(t, err)
	vetID, err := f.vets.Create(ctx, vets.Form{Name: "Dra. Gómez"})
	require.NoError(t, err)

	require.NoError(t, f.pets.AttachHistory(ctx, petID, HistoryForm{Medicine: "1"}))
	require.NoError(t, f.pets.AttachHistory(ctx, petID, HistoryForm{Medicine: "1", Vet: "1"}))
	require.NoError(t, f.pets.AttachHistory(ctx, petID, HistoryForm{}))

	history, err := f.pets.History(ctx, petID)
	require.NoError(t, err)
	assert.Nil(t, history.Owner)
	require.Len(t, history.Medicines, 1)
	assert.Equal(t, medID, history.Medicines[0].ID)
	require.Len(t, history.Vets, 1)
	assert.Equal(t, vetID, history.Vets[0].ID)
}

func TestAttachHistoryChecksEveryReferenceFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	petID, err := f.pets.Create(ctx, firulais())
	require.NoError(t, err)
	_, err = f.medicines.Create(ctx, medicines.Form{Name: "Amoxicilina", Description: "Antibiótico", Dose: "3"})
	require.NoError(t, err)

	err = f.pets.AttachHistory(ctx, petID, HistoryForm{Medicine: "1", Vet: "8"})
	require.ErrorIs(t, err, shared.ErrNotFound)

	history, err := f.pets.History(ctx, petID)
	require.NoError(t, err)
	assert.Empty(t, history.Medicines)

	assert.ErrorIs(t, f.pets.AttachHistory(ctx, 77, HistoryForm{Medicine: "1"}), shared.ErrNotFound)
	assert.ErrorIs(t, f.pets.AttachHistory(ctx, petID, HistoryForm{Vet: "x"}), shared.ErrInvalidID)
}

func TestHistorySkipsDeletedLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.client(t)
	form := firulais()
	form.Client = "1"
	petID, err := f.pets.Create(ctx, form)
	require.NoError(t, err)
	medID, err := f.medicines.Create(ctx, medicines.Form{Name: "Amoxicilina", Description: "Antibiótico", Dose: "3"})
	require.NoError(t, err)
	require.NoError(t, f.pets.AttachHistory(ctx, petID, HistoryForm{Medicine: "1"}))

	require.NoError(t, f.medicines.Delete(ctx, medID))
	require.NoError(t, f.clients.Delete(ctx, 1))

	history, err := f.pets.History(ctx, petID)
	require.NoError(t, err)
	assert.Nil(t, history.Owner)
	assert.Empty(t, history.Medicines)
}

func TestPetDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, err := f.pets.Create(ctx, firulais())
	require.NoError(t, err)

	require.NoError(t, f.pets.Delete(ctx, id))
	_, err = f.pets.Get(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = f.pets.History(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// countingRepository records writes and can fail them the way a foreign key
// violation surfaces from Postgres.
type countingRepository struct {
	Repository
	creates, updates int
	writeErr         error
}

func (r *countingRepository) Create(ctx context.Context, pet Pet) (int64, error) {
	r.creates++
	if r.writeErr != nil {
		return 0, r.writeErr
	}
	return r.Repository.Create(ctx, pet)
}

func (r *countingRepository) Update(ctx context.Context, id int64, pet Pet) error {
	r.updates++
	if r.writeErr != nil {
		return r.writeErr
	}
	return r.Repository.Update(ctx, id, pet)
}

func newCountingFixture(t *testing.T) (fixture, *countingRepository) {
	t.Helper()
	f := newFixture(t)
	repo := &countingRepository{Repository: NewMemoryRepository()}
	f.pets = NewService(repo, f.clients, f.medicines, f.vets, clinictest.Validator())
	return f, repo
}

func TestPetOwnerIsWrittenWithThePet(t *testing.T) {
	f, repo := newCountingFixture(t)
	ctx := context.Background()
	clientID := f.client(t)

	form := firulais()
	form.Client = "1"
	id, err := f.pets.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
	assert.Zero(t, repo.updates)

	got, err := f.pets.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.ClientID)
	assert.Equal(t, clientID, *got.ClientID)
}

func TestPetCreateFailingOnOwnerLeavesNoRecord(t *testing.T) {
	f, repo := newCountingFixture(t)
	ctx := context.Background()
	f.client(t)
	repo.writeErr = shared.ErrNotFound

	form := firulais()
	form.Client = "1"
	_, err := f.pets.Create(ctx, form)
	require.ErrorIs(t, err, shared.ErrNotFound)

	items, err := f.pets.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPetUpdateFailingOnOwnerKeepsStoredPet(t *testing.T) {
	f, repo := newCountingFixture(t)
	ctx := context.Background()
	f.client(t)
	id, err := f.pets.Create(ctx, firulais())
	require.NoError(t, err)

	repo.writeErr = shared.ErrNotFound
	form := firulais()
	form.Name = "Roma"
	form.Client = "1"
	require.ErrorIs(t, f.pets.Update(ctx, id, form), shared.ErrNotFound)
	assert.Equal(t, 1, repo.updates)

	repo.writeErr = nil
	got, err := f.pets.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Firulais", got.Name)
	assert.Nil(t, got.ClientID)
}

func TestPetAcceptsLooseDecimals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for in, want := range map[string]float64{".5": 0.5, "5.": 5, "0.00001": 0.00001} {
		form := firulais()
		form.Weight = in
		id, err := f.pets.Create(ctx, form)
		require.NoError(t, err, in)
		got, err := f.pets.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Weight, in)
	}
}
