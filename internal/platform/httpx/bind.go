package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries field-level failures from a bind, ready to serialize
// into an ErrorBody.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ErrMalformedBody indicates the request body was not decodable JSON.
var ErrMalformedBody = errors.New("malformed request body")

// NewValidator returns a Validate instance whose error entries carry the wire
// field name from the json struct tag, so "OrderID" reports as "orderId" and
// "SKU" as "sku" rather than a guess derived from the Go identifier.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind decodes the JSON request body into dst and validates it. It returns
// ErrMalformedBody for undecodable JSON and *ValidationError for schema
// failures, so every handler maps outcomes to status codes the same way.
func Bind(r *http.Request, validate *validator.Validate, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return ErrMalformedBody
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		return verr
	}
	return nil
}

// RespondBindError writes the 400 response for an error returned by Bind.
func RespondBindError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		ValidationFailed(w, verr.Fields)
		return
	}
	Error(w, http.StatusBadRequest, "Invalid request body")
}
