// Package dice decodes the JSON roll payload roll20 stores in the content
// of a rollresult message.
package dice

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/KirkDiggler/roll20log/internal/models"
)

// EntryType discriminates the entries of a roll payload
type EntryType string

const (
	// EntryTypeRoll is a group of dice, e.g. 2d6
	EntryTypeRoll EntryType = "R"

	// EntryTypeComment is free text attached to the roll
	EntryTypeComment EntryType = "C"

	// EntryTypeModifier is a modifier expression, e.g. +5
	EntryTypeModifier EntryType = "M"
)

// DiceError is a custom error type for roll payload errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// ErrDecode is returned when a roll payload is not valid JSON
const ErrDecode DiceError = "malformed roll payload"

type payload struct {
	Total *float64          `json:"total"`
	Rolls []json.RawMessage `json:"rolls"`
}

type entryHeader struct {
	Type EntryType `json:"type"`
}

type rollEntry struct {
	Dice  int `json:"dice"`
	Sides int `json:"sides"`
}

type commentEntry struct {
	Text string `json:"text"`
}

type modifierEntry struct {
	Expr string `json:"expr"`
}

// ParseContent builds a SimpleRoll from the original expression and the
// JSON payload of a rollresult message. The recorded total is kept as is
// and never recomputed from the dice. Unknown entry types are ignored.
func ParseContent(expression, content string) (*models.SimpleRoll, error) {
	var p payload
	if err := json.Unmarshal([]byte(content), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	roll := &models.SimpleRoll{
		Expression: expression,
		Total:      IntTotal(p.Total),
	}

	for _, raw := range p.Rolls {
		if err := applyEntry(roll, raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	return roll, nil
}

// applyEntry reads the fields of an entry only once its type is known
func applyEntry(roll *models.SimpleRoll, raw json.RawMessage) error {
	var header entryHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case EntryTypeRoll:
		var e rollEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		roll.Dice = append(roll.Dice, models.DiceGroup{Count: e.Dice, Sides: e.Sides})
	case EntryTypeComment:
		var e commentEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		roll.Comment = e.Text
	case EntryTypeModifier:
		var e modifierEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		roll.Modifier = e.Expr
	}

	return nil
}

// IntTotal converts a JSON number total to an integer, keeping nil as nil
func IntTotal(total *float64) *int {
	if total == nil {
		return nil
	}
	v := int(math.Round(*total))
	return &v
}
