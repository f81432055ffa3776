// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StrengthTier is the severity bucket of a password strength score.
type StrengthTier string

const (
	StrengthWeak   StrengthTier = "weak"
	StrengthFair   StrengthTier = "fair"
	StrengthGood   StrengthTier = "good"
	StrengthStrong StrengthTier = "strong"
)

// PasswordStrength is the advisory rating of a password.
type PasswordStrength struct {
	// Score is the number of satisfied criteria, 0..4.
	Score int
	Tier  StrengthTier
	// Label is the human readable tier name ("Weak", "Fair", "Good", "Strong").
	Label string
}
