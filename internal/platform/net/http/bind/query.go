package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "trendboard/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

// ParseQuery decodes URL query parameters into T via `query` struct tags,
// then validates the result with the shared validator singleton.
// Absent parameters leave the zero value in place so callers can apply defaults.
// Unknown parameters are ignored; query surfaces are lenient by convention
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	vals := r.URL.Query()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("query")
		if tag == "" || tag == "-" {
			continue
		}
		name := tag
		if idx := strings.Index(tag, ","); idx >= 0 {
			name = tag[:idx]
		}
		raw, ok := vals[name]
		if !ok || len(raw) == 0 {
			continue
		}
		s := strings.TrimSpace(raw[0])

		field := rv.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(s)
		case reflect.Int, reflect.Int32, reflect.Int64:
			if s == "" {
				continue
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				var zero T
				return zero, perr.Newf(perr.ErrorCodeValidation, "%s must be an integer", name)
			}
			field.SetInt(n)
		case reflect.Bool:
			if s == "" {
				continue
			}
			b, err := strconv.ParseBool(s)
			if err != nil {
				var zero T
				return zero, perr.Newf(perr.ErrorCodeValidation, "%s must be a boolean", name)
			}
			field.SetBool(b)
		case reflect.Ptr:
			// *string distinguishes "absent" from "present but empty"
			if field.Type().Elem().Kind() == reflect.String {
				v := s
				field.Set(reflect.ValueOf(&v))
			}
		default:
			// unsupported kinds are a programmer error, keep loud
			panic("bind: unsupported query field kind " + field.Kind().String())
		}
	}

	if err := Get().Validator.Struct(dst); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			var zero T
			return zero, perr.Wrapf(inv, perr.ErrorCodeValidation, "validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		var zero T
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}

	return dst, nil
}
