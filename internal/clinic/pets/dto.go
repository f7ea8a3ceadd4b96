package pets

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

type Form struct {
	ID       string `form:"id"`
	Name     string `form:"name" validate:"required"`
	Breed    string `form:"breed" validate:"required"`
	Birthday string `form:"birthday" validate:"required,datetime=2006-01-02,pastdate"`
	Weight   string `form:"weight" validate:"required,decimal,positive"`
	Client   string `form:"client"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:       r.PostFormValue("id"),
		Name:     r.PostFormValue("name"),
		Breed:    r.PostFormValue("breed"),
		Birthday: r.PostFormValue("birthday"),
		Weight:   r.PostFormValue("weight"),
		Client:   r.PostFormValue("client"),
	}
}

func FormFromPet(p Pet) Form {
	form := Form{
		ID:       strconv.FormatInt(p.ID, 10),
		Name:     p.Name,
		Breed:    p.Breed,
		Birthday: p.Birthday.Format(shared.DateLayout),
		Weight:   strconv.FormatFloat(p.Weight, 'f', -1, 64),
	}
	if p.ClientID != nil {
		form.Client = strconv.FormatInt(*p.ClientID, 10)
	}
	return form
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Breed = strings.TrimSpace(f.Breed)
	f.Birthday = strings.TrimSpace(f.Birthday)
	f.Weight = strings.TrimSpace(f.Weight)
	f.Client = strings.TrimSpace(f.Client)
	return f
}

// HistoryForm names the medicine and vet to add to a pet's history. Either
// may be left blank.
type HistoryForm struct {
	Medicine string `form:"medicine"`
	Vet      string `form:"vet"`
}

func historyFormFromRequest(r *http.Request) HistoryForm {
	return HistoryForm{
		Medicine: strings.TrimSpace(r.PostFormValue("medicine")),
		Vet:      strings.TrimSpace(r.PostFormValue("vet")),
	}
}
