package clients

import "github.com/vetclinic/vetclinic/internal/clinic/shared"

var messages = map[string]string{
	"name.required":  "Por favor ingrese un nombre",
	"phone.required": "Por favor ingrese un teléfono",
	"email.required": "Por favor ingrese un email",
	"email.email":    "Por favor ingrese un email valido",
}

func (s *Service) validate(form Form) (Client, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Client{}, &shared.ValidationError{Fields: errs}
	}
	return Client{
		Name:    form.Name,
		Phone:   form.Phone,
		Email:   form.Email,
		Address: form.Address,
	}, nil
}
