package medicines

import (
	"strconv"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

var messages = map[string]string{
	"name.required":        "Por favor ingrese un nombre",
	"description.required": "Por favor ingrese una descripción",
	"dose.required":        "Por favor ingrese una dosis",
	"dose.numeric":         "La dosis debe ser un número entero",
	"dose.integer":         "La dosis debe ser un número entero",
	"dose.irange":          "La dosis debe estar en un rango de 1 a 10",
}

func (s *Service) validate(form Form) (Medicine, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Medicine{}, &shared.ValidationError{Fields: errs}
	}
	dose, err := strconv.Atoi(form.Dose)
	if err != nil {
		return Medicine{}, &shared.ValidationError{Fields: shared.FieldErrors{"dose": messages["dose.integer"]}}
	}
	return Medicine{
		Name:        form.Name,
		Description: form.Description,
		Dose:        dose,
	}, nil
}
