package pets

import (
	"time"

	"github.com/vetclinic/vetclinic/internal/clinic/shared"
)

var messages = map[string]string{
	"name.required":     "Por favor ingrese un nombre",
	"breed.required":    "Por favor ingrese una raza",
	"birthday.required": "Por favor ingrese una fecha de nacimiento",
	"birthday.datetime": "Por favor ingrese una fecha válida",
	"birthday.pastdate": "La fecha de nacimiento no puede ser mayor o igual a la fecha actual",
	"weight.required":   "Por favor ingrese un peso",
	"weight.decimal":    "El peso debe ser un número",
	"weight.positive":   "El peso debe ser un número mayor a cero",
}

func (s *Service) validate(form Form) (Pet, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Pet{}, &shared.ValidationError{Fields: errs}
	}
	errs := shared.FieldErrors{}
	birthday, err := time.Parse(shared.DateLayout, form.Birthday)
	if err != nil {
		errs.Add("birthday", messages["birthday.datetime"])
	}
	weight, err := shared.ParseDecimal(form.Weight)
	if err != nil {
		errs.Add("weight", messages["weight.decimal"])
	}
	if len(errs) > 0 {
		return Pet{}, &shared.ValidationError{Fields: errs}
	}
	return Pet{
		Name:     form.Name,
		Breed:    form.Breed,
		Birthday: birthday,
		Weight:   weight,
	}, nil
}
