package transcript

import (
	"context"
	"sort"

	"github.com/KirkDiggler/roll20log/internal/common/log"
	"github.com/KirkDiggler/roll20log/internal/models"
)

// service implements the Service interface
type service struct {
	defaultLimit int
}

// New creates a new transcript service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DefaultLimit < 0 {
		return nil, ErrNegativeLimit
	}

	return &service{
		defaultLimit: cfg.DefaultLimit,
	}, nil
}

// BuildLog classifies every record of every page and returns the messages sorted by time.
// Records that fail are reported in Skipped and never abort the build.
func (s *service) BuildLog(ctx context.Context, input *BuildLogInput) (*BuildLogOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Limit < 0 {
		return nil, ErrNegativeLimit
	}

	logger := log.Ctx(ctx)
	output := &BuildLogOutput{
		Messages: []*models.Message{},
	}

	for _, page := range input.Pages {
		for _, entry := range page {
			if entry.DecodeErr != nil {
				logger.Warn().Str(log.FieldMessageID, entry.MessageID).Err(entry.DecodeErr).Msg("skipping undecodable record")
				output.Skipped = append(output.Skipped, SkippedRecord{MessageID: entry.MessageID, Err: entry.DecodeErr})
				continue
			}

			messages, err := classify(entry.Record)
			if err != nil {
				logger.Warn().
					Str(log.FieldMessageID, entry.MessageID).
					Str(log.FieldRecordType, recordType(entry.Record)).
					Str(log.FieldRollTemplate, recordTemplate(entry.Record)).
					Err(err).
					Msg("skipping record")
				output.Skipped = append(output.Skipped, SkippedRecord{MessageID: entry.MessageID, Err: err})
				continue
			}

			if len(messages) == 0 {
				logger.Debug().
					Str(log.FieldMessageID, entry.MessageID).
					Str(log.FieldRecordType, recordType(entry.Record)).
					Str(log.FieldRollTemplate, recordTemplate(entry.Record)).
					Msg("dropping unsupported record")
				output.Dropped++
				continue
			}

			output.Messages = append(output.Messages, messages...)
		}
	}

	// same-millisecond messages keep their export order
	sort.SliceStable(output.Messages, func(i, j int) bool {
		return output.Messages[i].Timestamp.Before(output.Messages[j].Timestamp)
	})

	output.Messages = filterKinds(output.Messages, input.Kinds)

	limit := input.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > 0 && len(output.Messages) > limit {
		output.Messages = output.Messages[:limit]
	}

	logger.Debug().
		Int("messages", len(output.Messages)).
		Int("skipped", len(output.Skipped)).
		Int("dropped", output.Dropped).
		Msg("built transcript")

	return output, nil
}

// ClassifyRecord turns a single record into zero, one or two messages
func (s *service) ClassifyRecord(ctx context.Context, input *ClassifyRecordInput) (*ClassifyRecordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	messages, err := classify(input.Record)
	if err != nil {
		return nil, err
	}

	return &ClassifyRecordOutput{
		Messages: messages,
	}, nil
}

func filterKinds(messages []*models.Message, kinds []models.MessageKind) []*models.Message {
	if len(kinds) == 0 {
		return messages
	}

	keep := make(map[models.MessageKind]bool, len(kinds))
	for _, k := range kinds {
		keep[k] = true
	}

	filtered := make([]*models.Message, 0, len(messages))
	for _, m := range messages {
		if keep[m.Kind] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
