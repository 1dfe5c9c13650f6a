package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeID uniquely identifies a change request.
type ChangeID uuid.UUID

func (id ChangeID) String() string { return uuid.UUID(id).String() }

func (id ChangeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ChangeID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseChangeID parses the canonical textual form of a change id.
func ParseChangeID(s string) (ChangeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ChangeID{}, err
	}

	return ChangeID(id), nil
}

// EntityType tells which part of a company a change request targets.
type EntityType string

const (
	// EntityTypeProfileField targets a single named attribute of the profile.
	EntityTypeProfileField EntityType = "PROFILE_FIELD"
	// EntityTypeLogo targets the company logo.
	EntityTypeLogo EntityType = "LOGO"
	// EntityTypeBanner targets the company banner.
	EntityTypeBanner EntityType = "BANNER"
	// EntityTypeCategoryMembership targets the set of categories the company belongs to.
	EntityTypeCategoryMembership EntityType = "CATEGORY_MEMBERSHIP"
)

// Field keys used for entity types that do not address a named attribute.
const (
	FieldKeyLogo       = "@logo"
	FieldKeyBanner     = "@banner"
	FieldKeyCategories = "@categories"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTypeProfileField, EntityTypeLogo, EntityTypeBanner, EntityTypeCategoryMembership:
		return true
	default:
		return false
	}
}

// IsMedia reports whether the type references an external media asset.
func (t EntityType) IsMedia() bool {
	return t == EntityTypeLogo || t == EntityTypeBanner
}

// FixedFieldKey returns the sentinel field key for types that have one.
// Profile fields carry their own key, so ok is false for them.
func (t EntityType) FixedFieldKey() (key string, ok bool) {
	switch t {
	case EntityTypeLogo:
		return FieldKeyLogo, true
	case EntityTypeBanner:
		return FieldKeyBanner, true
	case EntityTypeCategoryMembership:
		return FieldKeyCategories, true
	default:
		return "", false
	}
}

// ChangeStatus is the lifecycle state of a change request.
// Every status other than pending is terminal.
type ChangeStatus string

const (
	ChangeStatusPending    ChangeStatus = "PENDING"
	ChangeStatusApproved   ChangeStatus = "APPROVED"
	ChangeStatusRejected   ChangeStatus = "REJECTED"
	ChangeStatusSuperseded ChangeStatus = "SUPERSEDED"
)

// Terminal reports whether no further transition is possible from s.
func (s ChangeStatus) Terminal() bool { return s != ChangeStatusPending }

// CategoryOperation is the membership mutation requested for a category.
type CategoryOperation string

const (
	CategoryOperationAdd    CategoryOperation = "add"
	CategoryOperationRemove CategoryOperation = "remove"
)

// FieldDiff is the payload of a profile field change. OldValue is what the owner saw
// when editing (nil if the field was unset); NewValue is what it should become.
type FieldDiff struct {
	OldValue *string `json:"oldValue"`
	NewValue *string `json:"newValue" validate:"required"`
}

// CategoryChange is the payload of a category membership change.
type CategoryChange struct {
	Operation  CategoryOperation `json:"operation" validate:"required,oneof=add remove"`
	CategoryID CategoryID        `json:"categoryId" validate:"required,gt=0"`
}

// Payload is the tagged union of change contents. Exactly one branch is set and it
// must match the entity type of the owning change request.
type Payload struct {
	Field    *FieldDiff      `json:"field,omitempty" validate:"omitempty"`
	Media    *MediaRef       `json:"media,omitempty" validate:"omitempty"`
	Category *CategoryChange `json:"category,omitempty" validate:"omitempty"`
}

// Matches reports whether exactly the branch expected for t is set.
func (p Payload) Matches(t EntityType) bool {
	set := 0
	for _, b := range []bool{p.Field != nil, p.Media != nil, p.Category != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return false
	}

	switch t {
	case EntityTypeProfileField:
		return p.Field != nil
	case EntityTypeLogo, EntityTypeBanner:
		return p.Media != nil
	case EntityTypeCategoryMembership:
		return p.Category != nil
	default:
		return false
	}
}

// ChangeRequest is a proposed mutation of a company awaiting or past review.
// Its payload never changes after creation; only the resolution fields do.
type ChangeRequest struct {
	ID         ChangeID     `json:"id"`
	EntityType EntityType   `json:"entityType"`
	EntityID   CompanyID    `json:"entityId"`
	FieldKey   string       `json:"fieldKey"`
	Payload    Payload      `json:"payload"`
	Status     ChangeStatus `json:"status"`

	SubmittedBy UserID  `json:"submittedBy"`
	ReviewedBy  *UserID `json:"reviewedBy,omitempty"`
	// RejectionReason is non-empty iff Status is rejected.
	RejectionReason string `json:"rejectionReason,omitempty"`

	// EntityVersionAtSubmit is the company version the owner was editing against.
	EntityVersionAtSubmit int64 `json:"entityVersionAtSubmit"`

	CreatedAt time.Time `json:"createdAt"`
	// ResolvedAt is zero while the request is pending.
	ResolvedAt time.Time `json:"resolvedAt"`
}
