package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/roll20log/internal/common/clock"
	"github.com/KirkDiggler/roll20log/internal/common/log"
	"github.com/KirkDiggler/roll20log/internal/common/uuid"
	"github.com/KirkDiggler/roll20log/internal/models"
	archiveRepo "github.com/KirkDiggler/roll20log/internal/repositories/archive"
)

// service implements the Service interface
type service struct {
	archiveRepo   archiveRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new archive service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ArchiveRepo == nil {
		return nil, ErrNilArchiveRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		archiveRepo:   cfg.ArchiveRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateArchive renders the messages and stores them under a new ID
func (s *service) CreateArchive(ctx context.Context, input *CreateArchiveInput) (*CreateArchiveOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}
	if len(input.Messages) == 0 {
		return nil, ErrEmptyTranscript
	}

	lines := make([]string, len(input.Messages))
	for i, m := range input.Messages {
		if m == nil {
			return nil, fmt.Errorf("%w: message %d is nil", ErrInvalidInput, i)
		}
		lines[i] = m.Render()
	}

	archive := &models.Archive{
		ID:             s.uuidGenerator.NewUUID(),
		SourceName:     input.SourceName,
		CreatedAt:      s.clock.Now(),
		MessageCount:   len(input.Messages),
		FirstMessageAt: input.Messages[0].Timestamp,
		LastMessageAt:  input.Messages[len(input.Messages)-1].Timestamp,
		Lines:          lines,
	}

	if err := s.archiveRepo.SaveArchive(ctx, &archiveRepo.SaveArchiveInput{Archive: archive}); err != nil {
		return nil, fmt.Errorf("failed to save archive: %w", err)
	}

	logger := log.Ctx(ctx)
	logger.Info().
		Str(log.FieldArchiveID, archive.ID).
		Str(log.FieldSource, archive.SourceName).
		Int("messages", archive.MessageCount).
		Msg("archived transcript")

	return &CreateArchiveOutput{
		Archive: archive,
	}, nil
}

// GetArchive retrieves an archived transcript
func (s *service) GetArchive(ctx context.Context, input *GetArchiveInput) (*GetArchiveOutput, error) {
	if input == nil || input.ArchiveID == "" {
		return nil, ErrInvalidInput
	}

	archive, err := s.archiveRepo.GetArchive(ctx, &archiveRepo.GetArchiveInput{ArchiveID: input.ArchiveID})
	if err != nil {
		if errors.Is(err, archiveRepo.ErrArchiveNotFound) {
			return nil, ErrArchiveNotFound
		}
		return nil, err
	}

	return &GetArchiveOutput{
		Archive: archive,
	}, nil
}

// ListArchives lists archived transcripts, newest first
func (s *service) ListArchives(ctx context.Context, input *ListArchivesInput) (*ListArchivesOutput, error) {
	if input == nil || input.Limit < 0 {
		return nil, ErrInvalidInput
	}

	output, err := s.archiveRepo.ListArchives(ctx, &archiveRepo.ListArchivesInput{Limit: input.Limit})
	if err != nil {
		return nil, err
	}

	return &ListArchivesOutput{
		Archives: output.Archives,
	}, nil
}

// DeleteArchive removes an archived transcript
func (s *service) DeleteArchive(ctx context.Context, input *DeleteArchiveInput) error {
	if input == nil || input.ArchiveID == "" {
		return ErrInvalidInput
	}

	err := s.archiveRepo.DeleteArchive(ctx, &archiveRepo.DeleteArchiveInput{ArchiveID: input.ArchiveID})
	if err != nil {
		if errors.Is(err, archiveRepo.ErrArchiveNotFound) {
			return ErrArchiveNotFound
		}
		return err
	}

	logger := log.Ctx(ctx)
	logger.Info().Str(log.FieldArchiveID, input.ArchiveID).Msg("deleted archive")
	return nil
}
