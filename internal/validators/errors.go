package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType     = errors.New("unsupported type for validation")
	ErrRequiredFieldsEmpty = errors.New("required fields are empty")
)

// RequiredFieldsError lists the required fields whose trimmed value is empty.
type RequiredFieldsError struct {
	FieldIDs []string
}

func (e *RequiredFieldsError) Error() string {
	return ErrRequiredFieldsEmpty.Error() + ": " + strings.Join(e.FieldIDs, ", ")
}

func (e *RequiredFieldsError) Unwrap() error {
	return ErrRequiredFieldsEmpty
}
