package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/roll20log/internal/common/uuid UUID

// UUID generates identifiers for archived transcripts
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates time ordered (version 7) UUIDs so archive IDs sort
// by creation time
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID, falling back to a random one if the
// time based generator fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
