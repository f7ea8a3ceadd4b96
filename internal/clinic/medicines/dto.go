package medicines

import (
	"net/http"
	"strconv"
	"strings"
)

type Form struct {
	ID          string `form:"id"`
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
	Dose        string `form:"dose" validate:"required,numeric,integer,irange=1:10"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:          r.PostFormValue("id"),
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Dose:        r.PostFormValue("dose"),
	}
}

func FormFromMedicine(m Medicine) Form {
	return Form{
		ID:          strconv.FormatInt(m.ID, 10),
		Name:        m.Name,
		Description: m.Description,
		Dose:        strconv.Itoa(m.Dose),
	}
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Dose = strings.TrimSpace(f.Dose)
	return f
}
