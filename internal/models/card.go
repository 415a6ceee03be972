package models

// Card is one prompt/target/transliteration triple. The JSON names are
// shared by the persisted value and export files, so they must not change.
type Card struct {
	ID              int64  `json:"id" yaml:"id"`
	PromptText      string `json:"english" yaml:"english"`
	TargetText      string `json:"arabic" yaml:"arabic"`
	Transliteration string `json:"romanization" yaml:"romanization"`
}

// Fields returns the editable part of the card.
func (c Card) Fields() CardFields {
	return CardFields{
		PromptText:      c.PromptText,
		TargetText:      c.TargetText,
		Transliteration: c.Transliteration,
	}
}

// WithFields returns a copy of c carrying f. The id is kept.
func (c Card) WithFields(f CardFields) Card {
	c.PromptText = f.PromptText
	c.TargetText = f.TargetText
	c.Transliteration = f.Transliteration
	return c
}

// CardFields are the three text fields a user submits from the editor.
type CardFields struct {
	PromptText      string `json:"english" validate:"required"`
	TargetText      string `json:"arabic" validate:"required"`
	Transliteration string `json:"romanization" validate:"required"`
}

// Labels name the three card faces in the UIs.
type Labels struct {
	Prompt          string `json:"prompt"`
	Target          string `json:"target"`
	Transliteration string `json:"transliteration"`
	TargetRTL       bool   `json:"target_rtl"`
}

// DefaultLabels match the bundled sample deck.
var DefaultLabels = Labels{
	Prompt:          "English",
	Target:          "Arabic",
	Transliteration: "Romanization",
	TargetRTL:       true,
}
