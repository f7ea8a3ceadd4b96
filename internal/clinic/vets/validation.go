package vets

import "github.com/vetclinic/vetclinic/internal/clinic/shared"

var messages = map[string]string{
	"name.required": "Por favor ingrese un nombre",
	"email.email":   "Por favor ingrese un email valido",
}

func (s *Service) validate(form Form) (Vet, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Vet{}, &shared.ValidationError{Fields: errs}
	}
	return Vet{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Specialty: form.Specialty,
	}, nil
}
