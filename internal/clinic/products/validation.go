package products

import "github.com/vetclinic/vetclinic/internal/clinic/shared"

var messages = map[string]string{
	"name.required":  "Por favor ingrese un nombre",
	"type.required":  "Por favor ingrese un tipo",
	"price.required": "Por favor ingrese un precio",
	"price.decimal":  "El precio debe ser un número",
	"price.positive": "El precio debe ser mayor que cero",
}

func (s *Service) validate(form Form) (Product, error) {
	if errs := s.validator.Check(form, messages); len(errs) > 0 {
		return Product{}, &shared.ValidationError{Fields: errs}
	}
	price, err := shared.ParseDecimal(form.Price)
	if err != nil {
		return Product{}, &shared.ValidationError{Fields: shared.FieldErrors{"price": messages["price.decimal"]}}
	}
	return Product{
		Name:  form.Name,
		Type:  form.Type,
		Price: price,
	}, nil
}
