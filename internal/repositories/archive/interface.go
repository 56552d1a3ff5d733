package archive

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roll20log/internal/repositories/archive Repository

import (
	"context"

	"github.com/KirkDiggler/roll20log/internal/models"
)

// Repository defines the interface for archived transcript persistence
type Repository interface {
	// SaveArchive persists an archive
	SaveArchive(ctx context.Context, input *SaveArchiveInput) error

	// GetArchive retrieves an archive by ID
	GetArchive(ctx context.Context, input *GetArchiveInput) (*models.Archive, error)

	// ListArchives retrieves the most recent archives, newest first
	ListArchives(ctx context.Context, input *ListArchivesInput) (*ListArchivesOutput, error)

	// DeleteArchive removes an archive
	DeleteArchive(ctx context.Context, input *DeleteArchiveInput) error
}
