package validators

import (
	"context"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

// Pipeline binds the input behaviors of one form: the required-field gate,
// registration-number upper-casing and the password-strength indicator.
type Pipeline struct {
	form *models.Form
	gate *Gate

	// strengthActive is set on registration forms: forms that hold both a
	// password and a registration-number field.
	strengthActive bool
	strengthLabel  string

	log *logger.Logger
}

// NewPipeline wires the behaviors to form.
func NewPipeline(form *models.Form, alerter Alerter, log *logger.Logger) *Pipeline {
	return &Pipeline{
		form:           form,
		gate:           NewGate(alerter, log),
		strengthActive: form.HasField(models.FieldPassword) && form.HasField(models.FieldRegNo),
		log:            log.ForComponent("validators"),
	}
}

// Form returns the form the pipeline is bound to.
func (p *Pipeline) Form() *models.Form {
	return p.form
}

// Submit runs the required-field gate.
func (p *Pipeline) Submit(ctx context.Context) models.ValidationResult {
	return p.gate.Submit(ctx, p.form)
}

// Input applies an input event to the field with fieldID and returns the
// value stored in the field after normalization. Unknown fields are ignored.
func (p *Pipeline) Input(fieldID, value string) (string, bool) {
	field, ok := p.form.FieldByID(fieldID)
	if !ok {
		return "", false
	}

	switch field.Name {
	case models.FieldRegNo:
		value = NormalizeRegNo(value)
	case models.FieldPassword:
		if p.strengthActive {
			p.strengthLabel = StrengthLabel(value)
		}
	}
	field.Value = value

	return value, true
}

// StrengthActive reports whether the password-strength indicator is shown on
// this form.
func (p *Pipeline) StrengthActive() bool {
	return p.strengthActive
}

// StrengthLabel returns the current indicator text, "" when nothing is shown.
func (p *Pipeline) StrengthLabel() string {
	return p.strengthLabel
}
