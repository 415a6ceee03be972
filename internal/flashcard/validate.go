package flashcard

import (
	"github.com/go-playground/validator/v10"
	"github.com/vytor/flashdeck/internal/models"
)

var validate = validator.New()

// ValidateFields checks that every field of a submission is non-empty.
func ValidateFields(f models.CardFields) error {
	return validate.Struct(f)
}

// Valid is ValidateFields as a predicate.
func Valid(f models.CardFields) bool {
	return ValidateFields(f) == nil
}
