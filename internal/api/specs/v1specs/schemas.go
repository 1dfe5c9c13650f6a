// Package v1specs contains the wire types and the HTTP server of the v1 API
// described by specs/v1.yaml. Handlers implement Handler and SecurityHandler;
// the server takes care of routing, authentication, decoding and encoding.
package v1specs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntityType is the part of a company a change targets.
type EntityType string

const (
	EntityTypePROFILEFIELD       EntityType = "PROFILE_FIELD"
	EntityTypeLOGO               EntityType = "LOGO"
	EntityTypeBANNER             EntityType = "BANNER"
	EntityTypeCATEGORYMEMBERSHIP EntityType = "CATEGORY_MEMBERSHIP"
)

// Validate reports an error for values outside the enum.
func (s EntityType) Validate() error {
	switch s {
	case EntityTypePROFILEFIELD, EntityTypeLOGO, EntityTypeBANNER, EntityTypeCATEGORYMEMBERSHIP:
		return nil
	default:
		return fmt.Errorf("invalid value: %q", string(s))
	}
}

// ChangeStatus is the lifecycle state of a change.
type ChangeStatus string

const (
	ChangeStatusPENDING    ChangeStatus = "PENDING"
	ChangeStatusAPPROVED   ChangeStatus = "APPROVED"
	ChangeStatusREJECTED   ChangeStatus = "REJECTED"
	ChangeStatusSUPERSEDED ChangeStatus = "SUPERSEDED"
)

// CategoryChangeOperation is the requested membership mutation.
type CategoryChangeOperation string

const (
	CategoryChangeOperationAdd    CategoryChangeOperation = "add"
	CategoryChangeOperationRemove CategoryChangeOperation = "remove"
)

// Validate reports an error for values outside the enum.
func (s CategoryChangeOperation) Validate() error {
	switch s {
	case CategoryChangeOperationAdd, CategoryChangeOperationRemove:
		return nil
	default:
		return fmt.Errorf("invalid value: %q", string(s))
	}
}

// Ref: #/components/schemas/FieldDiff
type FieldDiff struct {
	OldValue OptNilString `json:"oldValue"`
	NewValue string       `json:"newValue"`
}

// Ref: #/components/schemas/MediaRef
type MediaRef struct {
	AssetId  string `json:"assetId"`
	Checksum string `json:"checksum"`
}

// Ref: #/components/schemas/CategoryChange
type CategoryChange struct {
	Operation  CategoryChangeOperation `json:"operation"`
	CategoryId int64                   `json:"categoryId"`
}

// ChangePayload holds exactly one branch, matching the entity type of the change.
// Ref: #/components/schemas/ChangePayload
type ChangePayload struct {
	Field    *FieldDiff      `json:"field"`
	Media    *MediaRef       `json:"media"`
	Category *CategoryChange `json:"category"`
}

// Ref: #/components/schemas/Change
type Change struct {
	ID                    uuid.UUID     `json:"id"`
	EntityType            EntityType    `json:"entityType"`
	EntityId              int64         `json:"entityId"`
	FieldKey              string        `json:"fieldKey"`
	Payload               ChangePayload `json:"payload"`
	Status                ChangeStatus  `json:"status"`
	SubmittedBy           uuid.UUID     `json:"submittedBy"`
	ReviewedBy            OptUUID       `json:"reviewedBy"`
	RejectionReason       OptString     `json:"rejectionReason"`
	EntityVersionAtSubmit int64         `json:"entityVersionAtSubmit"`
	CreatedAt             time.Time     `json:"createdAt"`
	ResolvedAt            OptDateTime   `json:"resolvedAt"`
}

// Ref: #/components/schemas/ChangeList
type ChangeList struct {
	Items []Change `json:"items"`
}

// Ref: #/components/schemas/SubmitChangeRequest
type SubmitChangeRequest struct {
	EntityType EntityType    `json:"entityType"`
	FieldKey   OptString     `json:"fieldKey"`
	Payload    ChangePayload `json:"payload"`
}

// Validate checks enum values and the shape of the payload.
func (s *SubmitChangeRequest) Validate() error {
	if err := s.EntityType.Validate(); err != nil {
		return fmt.Errorf("entityType: %w", err)
	}
	if s.Payload.Category != nil {
		if err := s.Payload.Category.Operation.Validate(); err != nil {
			return fmt.Errorf("payload.category.operation: %w", err)
		}
	}

	return nil
}

// Ref: #/components/schemas/RejectChangeRequest
type RejectChangeRequest struct {
	Reason string `json:"reason"`
}

// Ref: #/components/schemas/ApprovalResult
type ApprovalResult struct {
	Change          Change `json:"change"`
	EntityVersion   int64  `json:"entityVersion"`
	AlreadyResolved bool   `json:"alreadyResolved"`
}

// Ref: #/components/schemas/ResolutionResult
type ResolutionResult struct {
	Change          Change `json:"change"`
	AlreadyResolved bool   `json:"alreadyResolved"`
}

// Ref: #/components/schemas/PendingCount
type PendingCount struct {
	CompanyId int64 `json:"companyId"`
	Pending   int64 `json:"pending"`
}

// Error is the body of every non-2xx response.
// Ref: #/components/schemas/Error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Change is set when the targeted change was already resolved.
	Change OptChange `json:"change"`
}

// ErrorStatusCode wraps Error with the HTTP status it is served with.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// SubmitChangeParams is parameters of SubmitChange operation.
type SubmitChangeParams struct {
	CompanyID int64
}

// ListPendingChangesParams is parameters of ListPendingChanges operation.
type ListPendingChangesParams struct {
	CompanyID OptInt64
}

// GetChangeParams is parameters of GetChange operation.
type GetChangeParams struct {
	ChangeID uuid.UUID
}

// ApproveChangeParams is parameters of ApproveChange operation.
type ApproveChangeParams struct {
	ChangeID uuid.UUID
}

// RejectChangeParams is parameters of RejectChange operation.
type RejectChangeParams struct {
	ChangeID uuid.UUID
}

// GetPendingCountParams is parameters of GetPendingCount operation.
type GetPendingCountParams struct {
	CompanyID int64
}
