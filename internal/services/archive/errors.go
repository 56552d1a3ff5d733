package archive

// ArchiveError is a custom error type for archive errors
type ArchiveError string

// Error implements the error interface
func (e ArchiveError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrArchiveNotFound  ArchiveError = "archive not found"
	ErrEmptyTranscript  ArchiveError = "transcript has no messages"
	ErrInvalidInput     ArchiveError = "invalid input"
	ErrNilConfig        ArchiveError = "config cannot be nil"
	ErrNilArchiveRepo   ArchiveError = "archive repository cannot be nil"
	ErrNilClock         ArchiveError = "clock cannot be nil"
	ErrNilUUIDGenerator ArchiveError = "UUID generator cannot be nil"
)
