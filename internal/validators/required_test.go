// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bus-pass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationForm() *models.Form {
	return &models.Form{
		ID: "apply",
		Fields: []*models.Field{
			{ID: "name", Name: "name", Required: true},
			{ID: "reg_no", Name: models.FieldRegNo, Required: true},
			{ID: "route", Name: "route", Required: true},
			{ID: "notes", Name: "notes"},
		},
	}
}

func TestRequiredFieldsValidator_AllFilled(t *testing.T) {
	form := newApplicationForm()
	form.Fields[0].Value = "Ann"
	form.Fields[1].Value = "21CS042"
	form.Fields[2].Value = "Route 7"

	err := NewRequiredFieldsValidator().Validate(context.Background(), form)

	require.NoError(t, err)
	for _, f := range form.Fields[:3] {
		assert.Equal(t, models.BorderValid, f.Border, f.ID)
	}
	assert.Equal(t, models.BorderUnmarked, form.Fields[3].Border, "optional fields are not marked")
}

func TestRequiredFieldsValidator_WhitespaceIsEmpty(t *testing.T) {
	form := newApplicationForm()
	form.Fields[0].Value = "Ann"
	form.Fields[1].Value = "   "
	form.Fields[2].Value = "\t\n"

	err := NewRequiredFieldsValidator().Validate(context.Background(), form)

	var reqErr *RequiredFieldsError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, []string{"reg_no", "route"}, reqErr.FieldIDs)
	assert.ErrorIs(t, err, ErrRequiredFieldsEmpty)

	assert.Equal(t, models.BorderValid, form.Fields[0].Border)
	assert.Equal(t, models.BorderInvalid, form.Fields[1].Border)
	assert.Equal(t, models.BorderInvalid, form.Fields[2].Border)
}

func TestRequiredFieldsValidator_RemarksFixedFields(t *testing.T) {
	form := newApplicationForm()
	v := NewRequiredFieldsValidator()

	require.Error(t, v.Validate(context.Background(), form))
	assert.Equal(t, models.BorderInvalid, form.Fields[0].Border)

	form.Fields[0].Value = "Ann"
	form.Fields[1].Value = "21CS042"
	form.Fields[2].Value = "Route 7"

	require.NoError(t, v.Validate(context.Background(), form))
	assert.Equal(t, models.BorderValid, form.Fields[0].Border)
}

func TestRequiredFieldsValidator_FieldScoping(t *testing.T) {
	form := newApplicationForm()
	form.Fields[0].Value = "Ann"

	err := NewRequiredFieldsValidator().Validate(context.Background(), form, "name")

	require.NoError(t, err)
	assert.Equal(t, models.BorderUnmarked, form.Fields[1].Border)
}

func TestRequiredFieldsValidator_ValueForm(t *testing.T) {
	form := newApplicationForm()

	err := NewRequiredFieldsValidator().Validate(context.Background(), *form)

	assert.ErrorIs(t, err, ErrRequiredFieldsEmpty)
	assert.Equal(t, models.BorderInvalid, form.Fields[0].Border, "fields are shared through pointers")
}

func TestRequiredFieldsValidator_UnsupportedType(t *testing.T) {
	v := NewRequiredFieldsValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "form"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Form)(nil)), ErrUnsupportedType)
}

func TestRequiredFieldsError_Message(t *testing.T) {
	err := &RequiredFieldsError{FieldIDs: []string{"a", "b"}}
	assert.Equal(t, "required fields are empty: a, b", err.Error())
}
