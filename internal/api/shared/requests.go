package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/clean-api/internal/domain"
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so details match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrInvalidBody is returned by DecodeJSON when the body is not valid JSON.
var ErrInvalidBody = errors.New("invalid request body")

// DecodeJSON decodes a single JSON value from the request body into v. An
// empty body leaves v at its zero value so the request is reported by
// validation instead. A field of the wrong JSON type is reported as a
// validation error naming that field. Bodies cut off by http.MaxBytesReader
// return the *http.MaxBytesError unchanged.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		// Anything after the first value makes the body invalid.
		err = dec.Decode(&struct{}{})
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}
	} else if errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return maxErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError("Invalid input data", domain.FieldError{
			Field:   typeErr.Field,
			Message: typeMessage(typeErr),
		})
	}

	return fmt.Errorf("%w: %v", ErrInvalidBody, err)
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	label := fieldLabel(typeErr.Field)
	if typeErr.Type != nil && typeErr.Type.Kind() == reflect.String {
		return label + " must be a string"
	}
	return label + " is invalid"
}

// ValidateRequest validates v using its validate struct tags. Failures are
// returned as a domain validation error with one detail per invalid field.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	details := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return domain.NewValidationError("Invalid input data", details...)
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required", "min":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "email":
		return "Invalid email format"
	default:
		return label + " is invalid"
	}
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
