package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-bus-pass/models"
)

const minPasswordLength = 6

// ScorePassword counts the satisfied criteria: at least six characters, an
// upper-case letter A-Z, a digit 0-9, and a character outside [A-Za-z0-9].
func ScorePassword(password string) int {
	score := 0
	// Characters are runes: a character outside the BMP counts once, not as
	// two UTF-16 units.
	if utf8.RuneCountInString(password) >= minPasswordLength {
		score++
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
		default:
			special = true
		}
	}

	for _, ok := range []bool{upper, digit, special} {
		if ok {
			score++
		}
	}
	return score
}

// RatePassword maps the score of password to its tier and label.
func RatePassword(password string) models.PasswordStrength {
	score := ScorePassword(password)

	switch score {
	case 4:
		return models.PasswordStrength{Score: score, Tier: models.StrengthStrong, Label: "Strong"}
	case 3:
		return models.PasswordStrength{Score: score, Tier: models.StrengthGood, Label: "Good"}
	case 2:
		return models.PasswordStrength{Score: score, Tier: models.StrengthFair, Label: "Fair"}
	default:
		return models.PasswordStrength{Score: score, Tier: models.StrengthWeak, Label: "Weak"}
	}
}

// StrengthLabel is the text rendered beside the password field; empty input
// renders nothing.
func StrengthLabel(password string) string {
	if password == "" {
		return ""
	}
	return "Password strength: " + RatePassword(password).Label
}
