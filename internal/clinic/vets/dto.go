package vets

import (
	"net/http"
	"strconv"
	"strings"
)

type Form struct {
	ID        string `form:"id"`
	Name      string `form:"name" validate:"required"`
	Email     string `form:"email" validate:"omitempty,email"`
	Phone     string `form:"phone"`
	Specialty string `form:"specialty"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:        r.PostFormValue("id"),
		Name:      r.PostFormValue("name"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Specialty: r.PostFormValue("specialty"),
	}
}

func FormFromVet(v Vet) Form {
	return Form{
		ID:        strconv.FormatInt(v.ID, 10),
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Specialty: v.Specialty,
	}
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Specialty = strings.TrimSpace(f.Specialty)
	return f
}
