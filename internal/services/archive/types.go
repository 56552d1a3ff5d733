package archive

import (
	"github.com/KirkDiggler/roll20log/internal/common/clock"
	"github.com/KirkDiggler/roll20log/internal/common/uuid"
	"github.com/KirkDiggler/roll20log/internal/models"
	archiveRepo "github.com/KirkDiggler/roll20log/internal/repositories/archive"
)

// Config holds configuration for the archive service
type Config struct {
	// Repository dependencies
	ArchiveRepo archiveRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateArchiveInput contains parameters for archiving a transcript
type CreateArchiveInput struct {
	// SourceName is the export file the transcript was built from
	SourceName string

	// Messages are the transcript messages in display order
	Messages []*models.Message
}

// CreateArchiveOutput contains the created archive
type CreateArchiveOutput struct {
	Archive *models.Archive
}

// GetArchiveInput contains parameters for getting an archive
type GetArchiveInput struct {
	ArchiveID string
}

// GetArchiveOutput contains the requested archive
type GetArchiveOutput struct {
	Archive *models.Archive
}

// ListArchivesInput contains parameters for listing archives
type ListArchivesInput struct {
	// Limit is the maximum number of archives returned. Zero returns all.
	Limit int
}

// ListArchivesOutput contains the listed archives
type ListArchivesOutput struct {
	Archives []*models.Archive
}

// DeleteArchiveInput contains parameters for deleting an archive
type DeleteArchiveInput struct {
	ArchiveID string
}
