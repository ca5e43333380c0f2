// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorsToMap: ubah error dari validator/v10 jadi map
// field -> daftar pelanggaran, siap dipakai JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	fieldErrors := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = []string{err.Error()}
		return fieldErrors
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], fe.Tag())
	}
	return fieldErrors
}
