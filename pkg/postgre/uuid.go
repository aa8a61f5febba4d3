package postgre

import (
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
)

// ErrInvalidUUID is returned when an identifier is not a valid UUID.
var ErrInvalidUUID = errors.New("invalid uuid")

// IsUUID validates that the given string is a well-formed UUID.
func IsUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.Wrapf(ErrInvalidUUID, "%q", id)
	}
	return nil
}

// ValidateUUIDs validates every id in the slice.
func ValidateUUIDs(ids []string) error {
	for _, id := range ids {
		if err := IsUUID(id); err != nil {
			return err
		}
	}
	return nil
}
