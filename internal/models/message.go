package models

import (
	"fmt"
	"time"
)

// MessageKind identifies what a chat message represents
type MessageKind string

const (
	// MessageKindGeneral is a plain chat message
	MessageKindGeneral MessageKind = "general"

	// MessageKindRoll is a /roll command result
	MessageKindRoll MessageKind = "roll"

	// MessageKindAttack is an attack roll from a roll template
	MessageKindAttack MessageKind = "attack"

	// MessageKindDamage is a damage roll from a roll template
	MessageKindDamage MessageKind = "damage"

	// MessageKindAbilityCheck is an ability check such as Insight or Persuasion
	MessageKindAbilityCheck MessageKind = "ability_check"

	// MessageKindAbility is a spell or feature card with no roll attached
	MessageKindAbility MessageKind = "ability"
)

// TimestampLayout is how message timestamps are displayed
const TimestampLayout = time.ANSIC

// IsRoll reports whether messages of this kind carry a dice result
func (k MessageKind) IsRoll() bool {
	switch k {
	case MessageKindRoll, MessageKindAttack, MessageKindDamage, MessageKindAbilityCheck:
		return true
	}
	return false
}

// Message is a single entry of the chat transcript. Exactly one payload
// field is set, selected by Kind; general messages have none.
type Message struct {
	// Kind selects the payload
	Kind MessageKind

	// PlayerName is who sent the message
	PlayerName string

	// Avatar is the sender's avatar URL. May be empty.
	Avatar string

	// Timestamp is when the message was posted, in UTC
	Timestamp time.Time

	// Content is the raw message content as exported
	Content string

	// Roll is set for MessageKindRoll
	Roll *SimpleRoll

	// Ability is set for MessageKindAttack and MessageKindAbilityCheck
	Ability *AbilityRoll

	// Damage is set for MessageKindDamage
	Damage *DamageRoll

	// AbilityName is set for MessageKindAbility
	AbilityName string
}

// TimestampFromMillis converts an export priority (ms since epoch) to UTC time
func TimestampFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Summary renders the kind-specific part of the display line
func (m *Message) Summary() string {
	switch m.Kind {
	case MessageKindRoll:
		if m.Roll != nil {
			return m.Roll.Summary()
		}
	case MessageKindAttack, MessageKindAbilityCheck:
		if m.Ability != nil {
			return m.Ability.Summary()
		}
	case MessageKindDamage:
		if m.Damage != nil {
			return m.Damage.Summary()
		}
	case MessageKindAbility:
		return m.AbilityName
	}
	return m.Content
}

// Render produces the display line "(<time>) <player>: <summary>"
func (m *Message) Render() string {
	return fmt.Sprintf("(%s) %s: %s", m.Timestamp.Format(TimestampLayout), m.PlayerName, m.Summary())
}
