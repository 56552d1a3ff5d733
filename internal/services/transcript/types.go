package transcript

import (
	"github.com/KirkDiggler/roll20log/internal/models"
	"github.com/KirkDiggler/roll20log/internal/roll20"
)

// Roll template tags handled by the classifier
const (
	TemplateAttack       = "atk"
	TemplateAttackDamage = "atkdmg"
	TemplateDamage       = "dmg"
	TemplateSimple       = "simple"
	TemplateSpell        = "spell"
	TemplateSpellOutput  = "spelloutput"
	TemplateTraits       = "traits"
)

// AttackRollCount is how many leading inline rolls of an atkdmg template
// belong to the attack; the rest are damage
const AttackRollCount = 2

// Config holds configuration for the transcript service
type Config struct {
	// DefaultLimit caps the number of messages returned when the input does
	// not set one. Zero means no limit.
	DefaultLimit int
}

// BuildLogInput contains parameters for building a transcript
type BuildLogInput struct {
	// Pages are the decoded export pages in source order
	Pages []roll20.Page

	// Kinds restricts the output to these message kinds. Empty keeps all.
	Kinds []models.MessageKind

	// Limit keeps only the first Limit messages after sorting. Zero uses
	// the configured default.
	Limit int
}

// SkippedRecord is a record that could not be turned into a message
type SkippedRecord struct {
	// MessageID is the key of the record in its page
	MessageID string

	// Err is why the record was skipped
	Err error
}

// BuildLogOutput contains the built transcript
type BuildLogOutput struct {
	// Messages are sorted ascending by timestamp
	Messages []*models.Message

	// Skipped are records aborted by a per-record error
	Skipped []SkippedRecord

	// Dropped is the number of records matching no known message shape
	Dropped int
}

// ClassifyRecordInput contains parameters for classifying a record
type ClassifyRecordInput struct {
	// MessageID is the key of the record in its page
	MessageID string

	// Record is the raw exported record
	Record *roll20.Record
}

// ClassifyRecordOutput contains the messages produced from a record
type ClassifyRecordOutput struct {
	// Messages is empty when the record was dropped. An atkdmg record
	// yields the attack followed by the damage.
	Messages []*models.Message
}
