// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Recognised field names.
const (
	FieldRegNo    = "reg_no"
	FieldPassword = "password"
)

// BorderState is the visual treatment of a field after a submission attempt.
type BorderState int

const (
	BorderUnmarked BorderState = iota
	BorderValid
	BorderInvalid
)

// Field is a single form input.
type Field struct {
	ID       string
	Name     string
	Label    string
	Value    string
	Required bool
	Secret   bool
	Border   BorderState
}

// Form is an ordered collection of fields submitted together.
type Form struct {
	ID     string
	Action string
	Fields []*Field
}

// FieldByName returns the first field with the given name.
func (f *Form) FieldByName(name string) (*Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return nil, false
}

// FieldByID returns the field with the given id.
func (f *Form) FieldByID(id string) (*Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return nil, false
}

// HasField reports whether the form contains a field with the given name.
func (f *Form) HasField(name string) bool {
	_, ok := f.FieldByName(name)
	return ok
}

// ValidationResult is the outcome of one submission attempt.
type ValidationResult struct {
	IsValid         bool
	InvalidFieldIDs []string
}
