package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation wraps struct tag failures on a bound query.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps query strings that cannot be decoded at all,
	// such as apc=maybe.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field errors are reported under
// the query parameter name, so a bad ?limit= is reported as "limit".
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(paramName)
		_ = validate.RegisterValidation("notblank", notBlank)
	})

	return validate
}

// Validatable is implemented by queries with rules spanning several fields.
type Validatable interface {
	Validate() error
}

// BindQuery decodes the query string into q and validates it.
func BindQuery(c *gin.Context, q any) error {
	if err := c.ShouldBindQuery(q); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(q)
}

// Validate checks the struct tags of v, then its own rules when v is
// Validatable. Rule errors are returned unwrapped so domain validation
// errors keep their field.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if rules, ok := v.(Validatable); ok {
		return rules.Validate()
	}

	return nil
}

// FieldErrors returns a message per offending parameter, or nil when err
// carries no struct tag failures.
func FieldErrors(err error) map[string]string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fieldName(fe)] = fieldMessage(fe)
	}

	return out
}

var fieldMessages = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"gte":      "must be at least {param}",
	"lte":      "must be at most {param}",
	"min":      "must be at least {param}",
	"max":      "must be at most {param}",
	"oneof":    "must be one of: {param}",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed " + fe.Tag() + " check"
}

// fieldName reports repeated parameters by name alone: area[1] is "area".
func fieldName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func paramName(fld reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")

		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return fld.Name
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
