package validators

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-bus-pass/internal/logger"
	"github.com/MKhiriev/go-bus-pass/models"
)

// RequiredFieldsAlert is the single blocking alert raised for a blocked submission.
const RequiredFieldsAlert = "Please fill in all required fields."

// Gate decides whether a form submission may proceed.
type Gate struct {
	validator Validator
	alerter   Alerter
	log       *logger.Logger
}

// NewGate creates a gate using the required-field validator. alerter may be
// nil, in which case blocked submissions are only logged.
func NewGate(alerter Alerter, log *logger.Logger) *Gate {
	return &Gate{
		validator: NewRequiredFieldsValidator(),
		alerter:   alerter,
		log:       log.ForComponent("validators"),
	}
}

// Submit checks the form. An invalid result means the submission is
// cancelled: the invalid fields are marked and exactly one alert is shown.
func (g *Gate) Submit(ctx context.Context, form *models.Form) models.ValidationResult {
	err := g.validator.Validate(ctx, form)
	if err == nil {
		return models.ValidationResult{IsValid: true}
	}

	var reqErr *RequiredFieldsError
	if !errors.As(err, &reqErr) {
		g.log.Err(err).Str("func", "Gate.Submit").Msg("form could not be validated")
		return models.ValidationResult{IsValid: false}
	}

	g.log.Debug().Str("func", "Gate.Submit").
		Str("form", form.ID).
		Strs("invalid", reqErr.FieldIDs).
		Msg("submission blocked")

	if g.alerter != nil {
		g.alerter.Alert(RequiredFieldsAlert)
	}

	return models.ValidationResult{IsValid: false, InvalidFieldIDs: reqErr.FieldIDs}
}
