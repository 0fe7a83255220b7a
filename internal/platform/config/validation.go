package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid configuration")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their koanf key so messages name what to fix.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		return name
	})

	_ = v.RegisterValidation("relational_dsn", relationalDSN)

	return v
}

// Validate checks c and lists every offending key, one per line.
// Services refuse to start on an invalid configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		lines[i] = describe(fe)
	}

	return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, param)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", key, param)
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", key, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, param)
	case "url":
		return key + " must be a valid URL"
	case "startswith":
		return fmt.Sprintf("%s must start with %q", key, param)
	case "relational_dsn":
		return key + " must be a SQLite file path or a postgres:// URL"
	default:
		return fmt.Sprintf("%s failed %s check", key, fe.Tag())
	}
}

// keyPath drops the root struct from a namespace: Config.stores.graph.endpoint
// becomes stores.graph.endpoint.
func keyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

// relationalDSN accepts a postgres URL or a plain path; any other URL
// scheme is rejected.
func relationalDSN(fl validator.FieldLevel) bool {
	dsn := strings.ToLower(fl.Field().String())

	scheme, _, isURL := strings.Cut(dsn, "://")
	if !isURL {
		return true
	}

	return scheme == "postgres" || scheme == "postgresql"
}
