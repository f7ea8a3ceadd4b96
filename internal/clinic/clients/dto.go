package clients

import (
	"net/http"
	"strconv"
	"strings"
)

// Form carries a client submission exactly as typed by the user.
type Form struct {
	ID      string `form:"id"`
	Name    string `form:"name" validate:"required"`
	Phone   string `form:"phone" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Address string `form:"address"`
}

func formFromRequest(r *http.Request) Form {
	return Form{
		ID:      r.PostFormValue("id"),
		Name:    r.PostFormValue("name"),
		Phone:   r.PostFormValue("phone"),
		Email:   r.PostFormValue("email"),
		Address: r.PostFormValue("address"),
	}
}

// FormFromClient prefills the edit form.
func FormFromClient(c Client) Form {
	return Form{
		ID:      strconv.FormatInt(c.ID, 10),
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

func (f Form) normalize() Form {
	f.ID = strings.TrimSpace(f.ID)
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	return f
}
