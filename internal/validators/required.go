package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-bus-pass/models"
)

// RequiredFieldsValidator checks that every required field of a form holds a
// non-empty trimmed value. As a side effect it marks each checked field's
// border as valid or invalid.
type RequiredFieldsValidator struct{}

// NewRequiredFieldsValidator returns the validator as the Validator interface.
func NewRequiredFieldsValidator() Validator {
	return &RequiredFieldsValidator{}
}

// Validate accepts models.Form or *models.Form. When fieldIDs are given only
// those required fields are checked. Returns *RequiredFieldsError when at
// least one field is empty.
func (v *RequiredFieldsValidator) Validate(ctx context.Context, obj any, fieldIDs ...string) error {
	switch form := obj.(type) {
	case *models.Form:
		if form == nil {
			return fmt.Errorf("%w: nil form", ErrUnsupportedType)
		}
		return v.validateForm(ctx, form, fieldIDs...)
	case models.Form:
		return v.validateForm(ctx, &form, fieldIDs...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequiredFieldsValidator) validateForm(_ context.Context, form *models.Form, fieldIDs ...string) error {
	var invalid []string

	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		if len(fieldIDs) > 0 && !slices.Contains(fieldIDs, field.ID) {
			continue
		}

		if strings.TrimSpace(field.Value) == "" {
			field.Border = models.BorderInvalid
			invalid = append(invalid, field.ID)
		} else {
			field.Border = models.BorderValid
		}
	}

	if len(invalid) > 0 {
		return &RequiredFieldsError{FieldIDs: invalid}
	}
	return nil
}
