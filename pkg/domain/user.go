package domain

import "github.com/google/uuid"

// UserID identifies an actor, either a company owner submitting changes or a
// reviewer resolving them. Authorization happens upstream; the engine only records it.
type UserID uuid.UUID

func (u UserID) String() string { return uuid.UUID(u).String() }

func (u UserID) MarshalText() ([]byte, error) { return uuid.UUID(u).MarshalText() }

func (u *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(u).UnmarshalText(b) }

// IsZero reports whether the id is unset.
func (u UserID) IsZero() bool { return uuid.UUID(u) == uuid.Nil }

// ParseUserID parses the canonical textual form of a user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}

	return UserID(id), nil
}
