package providers

import "github.com/vetclinic/vetclinic/internal/clinic/shared"

var messages = map[string]string{
	"name.required":   "Por favor ingrese un nombre",
	"email.required":  "Por favor ingrese un email",
	"email.email":     "Por favor ingrese un email valido",
	"address.address": "Por favor ingrese una dirección válida",
}

// validate is applied on create and on update alike.
func (s *Service) validate(form Form) (Provider, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Provider{}, &shared.ValidationError{Fields: errs}
	}
	return Provider{
		Name:    form.Name,
		Email:   form.Email,
		Address: form.Address,
	}, nil
}
