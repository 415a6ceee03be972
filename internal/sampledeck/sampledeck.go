// Package sampledeck provides the built-in deck used when no saved deck can be loaded.
package sampledeck

import (
	_ "embed"
	"fmt"

	"github.com/vytor/flashdeck/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed sample_deck.yaml
var sampleYAML []byte

var cards = mustParse(sampleYAML)

// Cards returns a fresh copy of the built-in deck.
func Cards() []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	return out
}

// Parse decodes a YAML deck.
func Parse(data []byte) ([]models.Card, error) {
	var out []models.Card
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse sample deck: %w", err)
	}
	return out, nil
}

func mustParse(data []byte) []models.Card {
	out, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return out
}
