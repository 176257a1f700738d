package availability

import (
	"fmt"

	"github.com/google/uuid"
)

type (
	ResourceID string
	BlockadeID string
	BatchID    string
)

func NewResourceID() ResourceID { return ResourceID(uuid.New().String()) }
func NewBlockadeID() BlockadeID { return BlockadeID(uuid.New().String()) }
func NewBatchID() BatchID       { return BatchID(uuid.New().String()) }

func parseUUID(kind, s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%s %q: %w", kind, s, ErrInvalidArgument)
	}
	return id.String(), nil
}

func ParseResourceID(s string) (ResourceID, error) {
	id, err := parseUUID("resource id", s)
	return ResourceID(id), err
}

func ParseBlockadeID(s string) (BlockadeID, error) {
	id, err := parseUUID("blockade id", s)
	return BlockadeID(id), err
}

func ParseBatchID(s string) (BatchID, error) {
	id, err := parseUUID("batch id", s)
	return BatchID(id), err
}

func (id ResourceID) String() string { return string(id) }
func (id BlockadeID) String() string { return string(id) }
func (id BatchID) String() string    { return string(id) }
