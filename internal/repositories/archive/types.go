package archive

import "github.com/KirkDiggler/roll20log/internal/models"

// SaveArchiveInput contains parameters for saving an archive
type SaveArchiveInput struct {
	Archive *models.Archive
}

// GetArchiveInput contains parameters for getting an archive
type GetArchiveInput struct {
	ArchiveID string
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
