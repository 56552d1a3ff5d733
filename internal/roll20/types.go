package roll20

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record types as they appear in the export
const (
	RecordTypeGeneral    = "general"
	RecordTypeRollResult = "rollresult"
)

// Record is a single chat message as exported by roll20.
// Pointer fields distinguish a missing key from an empty value.
type Record struct {
	// Type is the message type, e.g. "general" or "rollresult"
	Type *string `json:"type"`

	// RollTemplate is the roll template tag, e.g. "atk" or "spell"
	RollTemplate string `json:"rolltemplate,omitempty"`

	// Who is the display name of the sender
	Who *string `json:"who"`

	// Avatar is the sender's avatar URL
	Avatar string `json:"avatar,omitempty"`

	// Priority is the post time in milliseconds since epoch
	Priority *float64 `json:".priority"`

	// Content is the template markup, chat text or roll payload
	Content string `json:"content"`

	// OrigRoll is the expression typed for a /roll command
	OrigRoll string `json:"origRoll,omitempty"`

	// InlineRolls are the pre-evaluated rolls referenced by a template
	InlineRolls []InlineRoll `json:"inlinerolls,omitempty"`
}

// InlineRoll is a roll evaluated by roll20 and referenced from template markup
type InlineRoll struct {
	// Expression is the roll expression, e.g. "1d20+5"
	Expression string `json:"expression"`

	// Results holds the evaluated outcome
	Results *InlineRollResults `json:"results,omitempty"`
}

// InlineRollResults is the outcome of an inline roll
type InlineRollResults struct {
	// Total is the evaluated total
	Total *float64 `json:"total"`
}

// PageEntry is one record of a page together with its message ID
type PageEntry struct {
	// MessageID is the key the record was stored under
	MessageID string

	// Record is the decoded record. Nil when DecodeErr is set.
	Record *Record

	// DecodeErr is set when the record could not be decoded
	DecodeErr error
}

// Page is a batch of records keyed by message ID, in export order
type Page []PageEntry

// UnmarshalJSON decodes a JSON object of records keeping key order.
// A record that fails to decode is kept with DecodeErr set so the rest of
// the page survives. A null page decodes as empty.
func (p *Page) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Page{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("page must be a JSON object, got %v", tok)
	}

	entries := Page{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected page key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		entry := PageEntry{MessageID: id}
		var record Record
		if err := json.Unmarshal(raw, &record); err != nil {
			entry.DecodeErr = fmt.Errorf("failed to decode record %s: %w", id, err)
		} else {
			entry.Record = &record
		}
		entries = append(entries, entry)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = entries
	return nil
}
