package providers

import (
	"net/http"
	"strconv"
	"strings"
)

type Form struct {
	ID      string `form:"id"`
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Address string `form:"address" validate:"omitempty,address"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:      r.PostFormValue("id"),
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	}
}

func FormFromProvider(p Provider) Form {
	return Form{
		ID:      strconv.FormatInt(p.ID, 10),
		Name:    p.Name,
		Email:   p.Email,
		Address: p.Address,
	}
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	return f
}
