package transcript

import "context"

// Service defines the interface for turning exported chat records into a transcript
type Service interface {
	// BuildLog classifies every record of every page and returns the messages sorted by time
	BuildLog(ctx context.Context, input *BuildLogInput) (*BuildLogOutput, error)

	// ClassifyRecord turns a single record into zero, one or two messages
	ClassifyRecord(ctx context.Context, input *ClassifyRecordInput) (*ClassifyRecordOutput, error)
}
