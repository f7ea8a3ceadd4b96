package shared

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the format browsers submit for <input type="date">.
const DateLayout = "2006-01-02"

// decimalPattern accepts plain decimals such as "12", "12.5", ".5" and "5.".
// Exponents, hex floats, Inf and NaN are rejected.
var decimalPattern = regexp.MustCompile(`^[-+]?([0-9]+\.?[0-9]*|\.[0-9]+)$`)

const (
	minAddressLen = 3
	maxAddressLen = 200
)

// Validator checks entity forms and translates failures into the messages
// displayed next to each field.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewValidator builds a Validator whose date rules are evaluated against now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("decimal", isDecimal)
	_ = v.validate.RegisterValidation("positive", isPositive)
	_ = v.validate.RegisterValidation("integer", isInteger)
	_ = v.validate.RegisterValidation("irange", inIntRange)
	_ = v.validate.RegisterValidation("pastdate", v.isPastDate)
	_ = v.validate.RegisterValidation("address", isAddress)
	return v
}

// Check validates form and returns one message per failing field. Lookups
// in messages use "field.tag" keys; fallback is used for anything unmapped.
func (v *Validator) Check(form any, messages map[string]string) FieldErrors {
	errs := FieldErrors{}
	err := v.validate.Struct(form)
	if err == nil {
		return errs
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("general", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = "Valor inválido"
		}
		errs.Add(fe.Field(), msg)
	}
	return errs
}

// Today returns the current date at midnight in the validator's clock.
func (v *Validator) Today() time.Time {
	now := v.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (v *Validator) isPastDate(fl validator.FieldLevel) bool {
	today := v.Today()
	d, err := time.ParseInLocation(DateLayout, fl.Field().String(), today.Location())
	if err != nil {
		return false
	}
	return d.Before(today)
}

func isDecimal(fl validator.FieldLevel) bool {
	return decimalPattern.MatchString(fl.Field().String())
}

// ParseDecimal parses a value accepted by the decimal rule.
func ParseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("decimal %q out of range", s)
	}
	return n, nil
}

func isPositive(fl validator.FieldLevel) bool {
	n, err := ParseDecimal(fl.Field().String())
	return err == nil && n > 0
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil
}

// inIntRange expects a "min:max" parameter, both bounds inclusive.
func inIntRange(fl validator.FieldLevel) bool {
	lo, hi, ok := strings.Cut(fl.Param(), ":")
	if !ok {
		return false
	}
	minVal, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return false
	}
	maxVal, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return false
	}
	n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	if err != nil {
		return false
	}
	return n >= minVal && n <= maxVal
}

// isAddress accepts free-form street addresses that contain at least one
// letter and no control characters.
func isAddress(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	n := utf8.RuneCountInString(s)
	if n < minAddressLen || n > maxAddressLen {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
