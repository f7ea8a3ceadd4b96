package products

import (
	"net/http"
	"strconv"
	"strings"
)

type Form struct {
	ID       string `form:"id"`
	Name     string `form:"name" validate:"required"`
	Type     string `form:"type" validate:"required"`
	Price    string `form:"price" validate:"required,decimal,positive"`
	Provider string `form:"provider"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:       r.PostFormValue("id"),
		Name:     r.PostFormValue("name"),
		Type:     r.PostFormValue("type"),
		Price:    r.PostFormValue("price"),
		Provider: r.PostFormValue("provider"),
	}
}

func FormFromProduct(p Product) Form {
	form := Form{
		ID:    strconv.FormatInt(p.ID, 10),
		Name:  p.Name,
		Type:  p.Type,
		Price: strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
	if p.ProviderID != nil {
		form.Provider = strconv.FormatInt(*p.ProviderID, 10)
	}
	return form
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Type = strings.TrimSpace(f.Type)
	f.Price = strings.TrimSpace(f.Price)
	f.Provider = strings.TrimSpace(f.Provider)
	return f
}
