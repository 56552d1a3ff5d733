package models

import (
	"time"
)

// Archive is a rendered transcript kept for later retrieval
type Archive struct {
	// ID is the unique identifier for the archive
	ID string

	// SourceName is the export file the transcript was built from
	SourceName string

	// CreatedAt is when the archive was created
	CreatedAt time.Time

	// MessageCount is the number of messages in the transcript
	MessageCount int

	// FirstMessageAt is the timestamp of the earliest message
	FirstMessageAt time.Time

	// LastMessageAt is the timestamp of the latest message
	LastMessageAt time.Time

	// Lines are the rendered transcript lines in order
	Lines []string
}
