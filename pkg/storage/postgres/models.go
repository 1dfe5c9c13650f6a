package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"moderation/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// jsonb columns are mapped to []byte: goqu renders []byte as a quoted literal, while
// json.RawMessage would be expanded like any other slice.

type PgChangeRequest struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	EntityType string    `db:"entity_type"`
	EntityID   int64     `db:"entity_id"`
	FieldKey   string    `db:"field_key"`
	Payload    []byte    `db:"payload"`
	Status     string    `db:"status"`

	SubmittedBy     uuid.UUID      `db:"submitted_by"`
	ReviewedBy      uuid.NullUUID  `db:"reviewed_by"`
	RejectionReason sql.NullString `db:"rejection_reason"`

	EntityVersionAtSubmit int64 `db:"entity_version_at_submit"`

	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	ResolvedAt sql.NullTime `db:"resolved_at"`
}

func (p *PgChangeRequest) ToDomain() (*domain.ChangeRequest, error) {
	var payload domain.Payload
	if err := json.Unmarshal(p.Payload, &payload); err != nil {
		return nil, fmt.Errorf("could not unmarshal change request payload: %w", err)
	}

	var reviewedBy *domain.UserID
	if p.ReviewedBy.Valid {
		r := domain.UserID(p.ReviewedBy.UUID)
		reviewedBy = &r
	}

	return &domain.ChangeRequest{
		ID:                    domain.ChangeID(p.ID),
		EntityType:            domain.EntityType(p.EntityType),
		EntityID:              domain.CompanyID(p.EntityID),
		FieldKey:              p.FieldKey,
		Payload:               payload,
		Status:                domain.ChangeStatus(p.Status),
		SubmittedBy:           domain.UserID(p.SubmittedBy),
		ReviewedBy:            reviewedBy,
		RejectionReason:       p.RejectionReason.String,
		EntityVersionAtSubmit: p.EntityVersionAtSubmit,
		CreatedAt:             p.CreatedAt,
		ResolvedAt:            p.ResolvedAt.Time,
	}, nil
}

func (p *PgChangeRequest) FromDomain(change domain.ChangeRequest) error {
	payload, err := json.Marshal(change.Payload)
	if err != nil {
		return fmt.Errorf("could not marshal change request payload: %w", err)
	}

	*p = PgChangeRequest{
		ID:          uuid.UUID(change.ID),
		EntityType:  string(change.EntityType),
		EntityID:    int64(change.EntityID),
		FieldKey:    change.FieldKey,
		Payload:     payload,
		Status:      string(change.Status),
		SubmittedBy: uuid.UUID(change.SubmittedBy),
		RejectionReason: sql.NullString{
			String: change.RejectionReason,
			Valid:  change.RejectionReason != "",
		},
		EntityVersionAtSubmit: change.EntityVersionAtSubmit,
		CreatedAt:             change.CreatedAt,
		ResolvedAt: sql.NullTime{
			Time:  change.ResolvedAt,
			Valid: !change.ResolvedAt.IsZero(),
		},
	}
	if change.ReviewedBy != nil {
		p.ReviewedBy = uuid.NullUUID{UUID: uuid.UUID(*change.ReviewedBy), Valid: true}
	}

	return nil
}

func pgChangeRequestsToDomain(rows []PgChangeRequest) ([]domain.ChangeRequest, error) {
	out := make([]domain.ChangeRequest, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgCompany struct {
	ID         int64  `db:"id"         goqu:"skipinsert"`
	Name       string `db:"name"`
	Attributes []byte `db:"attributes"`
	Logo       []byte `db:"logo"`
	Banner     []byte `db:"banner"`
	Version    int64  `db:"version"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (p *PgCompany) ToDomain(categories []int64) (*domain.Company, error) {
	attributes := map[string]string{}
	if len(p.Attributes) > 0 {
		if err := json.Unmarshal(p.Attributes, &attributes); err != nil {
			return nil, fmt.Errorf("could not unmarshal company attributes: %w", err)
		}
	}

	logo, err := unmarshalMediaRef(p.Logo)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal company logo: %w", err)
	}
	banner, err := unmarshalMediaRef(p.Banner)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal company banner: %w", err)
	}

	cats := make([]domain.CategoryID, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, domain.CategoryID(c))
	}

	return &domain.Company{
		ID:         domain.CompanyID(p.ID),
		Name:       p.Name,
		Attributes: attributes,
		Logo:       logo,
		Banner:     banner,
		Categories: cats,
		Version:    p.Version,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}, nil
}

func unmarshalMediaRef(b []byte) (*domain.MediaRef, error) {
	if len(b) == 0 || string(b) == "null" {
		return nil, nil
	}

	var ref domain.MediaRef
	if err := json.Unmarshal(b, &ref); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &ref, nil
}

// mediaRefValue returns the value to store in a nullable jsonb media column.
func mediaRefValue(ref *domain.MediaRef) (any, error) {
	if ref == nil {
		return nil, nil
	}

	b, err := json.Marshal(ref)
	if err != nil {
		return nil, fmt.Errorf("could not marshal media ref: %w", err)
	}

	return string(b), nil
}

type PgCompanyRevision struct {
	CompanyID    int64     `db:"company_id"`
	Version      int64     `db:"version"`
	ChangeID     uuid.UUID `db:"change_id"`
	ForwardPatch []byte    `db:"forward_patch"`
	ReversePatch []byte    `db:"reverse_patch"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
}

func (p *PgCompanyRevision) ToDomain() *domain.CompanyRevision {
	return &domain.CompanyRevision{
		CompanyID:    domain.CompanyID(p.CompanyID),
		Version:      p.Version,
		ChangeID:     domain.ChangeID(p.ChangeID),
		ForwardPatch: p.ForwardPatch,
		ReversePatch: p.ReversePatch,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgCompanyRevision) FromDomain(revision domain.CompanyRevision) {
	*p = PgCompanyRevision{
		CompanyID:    int64(revision.CompanyID),
		Version:      revision.Version,
		ChangeID:     uuid.UUID(revision.ChangeID),
		ForwardPatch: revision.ForwardPatch,
		ReversePatch: revision.ReversePatch,
		CreatedAt:    revision.CreatedAt,
	}
}
