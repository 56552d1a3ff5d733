package transcript

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/roll20log/internal/dice"
	"github.com/KirkDiggler/roll20log/internal/models"
	"github.com/KirkDiggler/roll20log/internal/roll20"
	"github.com/KirkDiggler/roll20log/internal/rolltemplate"
)

// templates rendered as ability messages when no rolls are attached
var abilityTemplates = map[string]bool{
	TemplateSpell:       true,
	TemplateSpellOutput: true,
	TemplateTraits:      true,
}

// classify decides which kind of message a record is and builds it.
// A nil slice with a nil error means the record is not supported.
func classify(record *roll20.Record) ([]*models.Message, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	envelope, err := newEnvelope(record)
	if err != nil {
		return nil, err
	}

	typ := *record.Type
	hasInlineRolls := len(record.InlineRolls) > 0

	switch {
	case typ == roll20.RecordTypeGeneral && record.RollTemplate == "":
		envelope.Kind = models.MessageKindGeneral
		return []*models.Message{envelope}, nil

	case typ == roll20.RecordTypeRollResult && !hasInlineRolls:
		roll, err := dice.ParseContent(record.OrigRoll, record.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		envelope.Kind = models.MessageKindRoll
		envelope.Roll = roll
		return []*models.Message{envelope}, nil

	case hasInlineRolls:
		return classifyInlineRolls(envelope, record), nil

	case typ != roll20.RecordTypeGeneral && typ != roll20.RecordTypeRollResult &&
		abilityTemplates[record.RollTemplate]:
		envelope.Kind = models.MessageKindAbility
		envelope.AbilityName = rolltemplate.AbilityName(record.Content)
		return []*models.Message{envelope}, nil
	}

	return nil, nil
}

func classifyInlineRolls(envelope *models.Message, record *roll20.Record) []*models.Message {
	switch record.RollTemplate {
	case TemplateAttack:
		return []*models.Message{attackMessage(envelope, record.InlineRolls)}

	case TemplateAttackDamage:
		split := AttackRollCount
		if len(record.InlineRolls) < split {
			split = len(record.InlineRolls)
		}
		messages := []*models.Message{attackMessage(envelope, record.InlineRolls[:split])}
		if damage := damageRolls(record.InlineRolls[split:]); len(damage) > 0 {
			messages = append(messages, damageMessage(envelope, damage))
		}
		return messages

	case TemplateDamage:
		return []*models.Message{damageMessage(envelope, record.InlineRolls)}

	case TemplateSimple:
		msg := *envelope
		msg.Kind = models.MessageKindAbilityCheck
		msg.Ability = &models.AbilityRoll{
			Name:     rolltemplate.AbilityCheckName(record.Content),
			Attempts: simpleRolls(record.InlineRolls),
		}
		return []*models.Message{&msg}
	}

	return nil
}

func attackMessage(envelope *models.Message, rolls []roll20.InlineRoll) *models.Message {
	msg := *envelope
	msg.Kind = models.MessageKindAttack
	msg.Ability = &models.AbilityRoll{
		Name:     rolltemplate.AttackName(envelope.Content),
		Attempts: simpleRolls(rolls),
	}
	return &msg
}

func damageMessage(envelope *models.Message, rolls []roll20.InlineRoll) *models.Message {
	msg := *envelope
	msg.Kind = models.MessageKindDamage
	msg.Damage = &models.DamageRoll{
		Name:       rolltemplate.AttackName(envelope.Content),
		Components: simpleRolls(rolls),
	}
	return &msg
}

// damageRolls drops the placeholder rolls of an atkdmg template: the
// "CRIT" extra dice, which players reroll by hand, and the "0" no-damage roll
func damageRolls(rolls []roll20.InlineRoll) []roll20.InlineRoll {
	var kept []roll20.InlineRoll
	for _, r := range rolls {
		if strings.Contains(r.Expression, "CRIT") || r.Expression == "0" {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func simpleRolls(rolls []roll20.InlineRoll) []models.SimpleRoll {
	out := make([]models.SimpleRoll, len(rolls))
	for i, r := range rolls {
		out[i].Expression = r.Expression
		if r.Results != nil {
			out[i].Total = dice.IntTotal(r.Results.Total)
		}
	}
	return out
}

func newEnvelope(record *roll20.Record) (*models.Message, error) {
	switch {
	case record.Type == nil:
		return nil, fmt.Errorf("%w: type", ErrMissingField)
	case record.Who == nil:
		return nil, fmt.Errorf("%w: who", ErrMissingField)
	case record.Priority == nil:
		return nil, fmt.Errorf("%w: .priority", ErrMissingField)
	}

	return &models.Message{
		PlayerName: *record.Who,
		Avatar:     record.Avatar,
		Timestamp:  models.TimestampFromMillis(int64(*record.Priority)),
		Content:    record.Content,
	}, nil
}

func recordType(record *roll20.Record) string {
	if record == nil || record.Type == nil {
		return ""
	}
	return *record.Type
}

func recordTemplate(record *roll20.Record) string {
	if record == nil {
		return ""
	}
	return record.RollTemplate
}
