// Package utils holds small helpers shared by the interaction layer.
package utils

import "github.com/google/uuid"

// IDGenerator issues opaque, time-ordered identifiers used as notification
// handles.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates UUIDv7 strings, falling back to a random UUIDv4 if
// the clock-based variant cannot be produced.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
