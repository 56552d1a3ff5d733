package transcript

// TranscriptError is a custom error type for transcript errors
type TranscriptError string

// Error implements the error interface
func (e TranscriptError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMissingField  TranscriptError = "record is missing a required field"
	ErrParse         TranscriptError = "failed to parse roll"
	ErrNilRecord     TranscriptError = "record cannot be nil"
	ErrNilInput      TranscriptError = "input cannot be nil"
	ErrNilConfig     TranscriptError = "config cannot be nil"
	ErrNegativeLimit TranscriptError = "limit cannot be negative"
)
