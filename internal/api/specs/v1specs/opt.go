package v1specs

import (
	"time"

	"github.com/google/uuid"
)

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{Value: v, Set: true}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if o.Set {
		return o.Value
	}

	return d
}

// NewOptNilString returns new OptNilString with value set to v.
func NewOptNilString(v string) OptNilString {
	return OptNilString{Value: v, Set: true}
}

// OptNilString is optional nullable string.
type OptNilString struct {
	Value string
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilString was set.
func (o OptNilString) IsSet() bool { return o.Set }

// IsNull returns true if value is Null.
func (o OptNilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilString) SetToNull() {
	o.Set = true
	o.Null = true
	o.Value = ""
}

// Ptr returns nil when the value is unset or null.
func (o OptNilString) Ptr() *string {
	if !o.Set || o.Null {
		return nil
	}
	v := o.Value

	return &v
}

// NewOptInt64 returns new OptInt64 with value set to v.
func NewOptInt64(v int64) OptInt64 {
	return OptInt64{Value: v, Set: true}
}

// OptInt64 is optional int64.
type OptInt64 struct {
	Value int64
	Set   bool
}

// IsSet returns true if OptInt64 was set.
func (o OptInt64) IsSet() bool { return o.Set }

// NewOptUUID returns new OptUUID with value set to v.
func NewOptUUID(v uuid.UUID) OptUUID {
	return OptUUID{Value: v, Set: true}
}

// OptUUID is optional uuid.UUID.
type OptUUID struct {
	Value uuid.UUID
	Set   bool
}

// IsSet returns true if OptUUID was set.
func (o OptUUID) IsSet() bool { return o.Set }

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{Value: v, Set: true}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// NewOptChange returns new OptChange with value set to v.
func NewOptChange(v Change) OptChange {
	return OptChange{Value: v, Set: true}
}

// OptChange is optional Change.
type OptChange struct {
	Value Change
	Set   bool
}

// IsSet returns true if OptChange was set.
func (o OptChange) IsSet() bool { return o.Set }
