package archive

import "context"

// Service defines the interface for archiving rendered transcripts
type Service interface {
	// CreateArchive renders the messages and stores them under a new ID
	CreateArchive(ctx context.Context, input *CreateArchiveInput) (*CreateArchiveOutput, error)

	// GetArchive retrieves an archived transcript
	GetArchive(ctx context.Context, input *GetArchiveInput) (*GetArchiveOutput, error)

	// ListArchives lists archived transcripts, newest first
	ListArchives(ctx context.Context, input *ListArchivesInput) (*ListArchivesOutput, error)

	// DeleteArchive removes an archived transcript
	DeleteArchive(ctx context.Context, input *DeleteArchiveInput) error
}
