package postgres

import (
	"context"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	changeRequestsTable = "change_requests"

	onePendingIndex = "change_requests_one_pending_idx"
)

// CreateChangeRequest inserts the change request and returns the stored row.
// A second pending request for the same entity and field violates the partial
// unique index and is reported as storage.ErrDuplicatePending.
func (p *PgSQL) CreateChangeRequest(ctx context.Context, change domain.ChangeRequest) (*domain.ChangeRequest, error) {
	var pgChange PgChangeRequest
	if err := pgChange.FromDomain(change); err != nil {
		return nil, err
	}

	var row PgChangeRequest
	_, err := p.Builder.Insert(changeRequestsTable).
		Rows(pgChange).
		Returning(&PgChangeRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err, onePendingIndex) {
			return nil, storage.ErrDuplicatePending
		}

		return nil, fmt.Errorf("could not store change request into pg: %w", err)
	}

	return row.ToDomain()
}

// ChangeRequestByID returns a change request by its ID, or nil when it does not exist.
func (p *PgSQL) ChangeRequestByID(ctx context.Context, id domain.ChangeID) (*domain.ChangeRequest, error) {
	var row PgChangeRequest
	found, err := p.Builder.From(changeRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch change request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PendingChangeRequest returns the pending request for the entity and field key.
func (p *PgSQL) PendingChangeRequest(ctx context.Context,
	entityID domain.CompanyID,
	fieldKey string,
	forUpdate bool) (*domain.ChangeRequest, error) {
	ds := p.Builder.From(changeRequestsTable).
		Where(
			goqu.I("entity_id").Eq(int64(entityID)),
			goqu.I("field_key").Eq(fieldKey),
			goqu.I("status").Eq(string(domain.ChangeStatusPending)),
		)
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgChangeRequest
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pending change request: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ListPendingChangeRequests returns pending requests, oldest first.
func (p *PgSQL) ListPendingChangeRequests(ctx context.Context,
	filter storage.PendingFilter) ([]domain.ChangeRequest, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.ChangeStatusPending)),
	}
	if filter.EntityID != nil {
		w = append(w, goqu.I("entity_id").Eq(int64(*filter.EntityID)))
	}

	ds := p.Builder.From(changeRequestsTable).
		Where(w...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgChangeRequest
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending change requests from pg: %w", err)
	}

	return pgChangeRequestsToDomain(rows)
}

// TransitionChangeRequest performs a compare-and-set on the status column. Only the
// status and resolution columns appear in the update.
func (p *PgSQL) TransitionChangeRequest(ctx context.Context,
	id domain.ChangeID,
	from, to domain.ChangeStatus,
	transition storage.ChangeTransition) (*domain.ChangeRequest, error) {
	rec := goqu.Record{
		"status":      string(to),
		"resolved_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if !transition.ResolvedAt.IsZero() {
		rec["resolved_at"] = transition.ResolvedAt
	}
	if transition.ReviewedBy != nil {
		rec["reviewed_by"] = uuid.UUID(*transition.ReviewedBy)
	}
	if transition.RejectionReason != "" {
		rec["rejection_reason"] = transition.RejectionReason
	}

	var row PgChangeRequest
	found, err := p.Builder.Update(changeRequestsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(from)),
		).Returning(&PgChangeRequest{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not transition change request in pg: %w", err)
	}
	if found {
		return row.ToDomain()
	}

	exists, err := p.Builder.From(changeRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		CountContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not check change request existence: %w", err)
	}
	if exists == 0 {
		return nil, nil
	}

	return nil, storage.ErrStaleStatus
}

// PendingCountsByEntity counts pending requests grouped by company. With no ids all
// companies having pending requests are returned.
func (p *PgSQL) PendingCountsByEntity(ctx context.Context,
	entityIDs ...domain.CompanyID) ([]storage.PendingCount, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.ChangeStatusPending)),
	}
	if len(entityIDs) > 0 {
		ids := make([]int64, 0, len(entityIDs))
		for _, id := range entityIDs {
			ids = append(ids, int64(id))
		}
		w = append(w, goqu.I("entity_id").In(ids))
	}

	var counts []storage.PendingCount
	err := p.Builder.From(changeRequestsTable).
		Select(goqu.I("entity_id"), goqu.COUNT("*").As("pending")).
		Where(w...).
		GroupBy(goqu.I("entity_id")).
		Order(goqu.I("entity_id").Asc()).
		Executor().ScanStructsContext(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("could not count pending change requests: %w", err)
	}

	return counts, nil
}

// DuplicatePendingGroups returns (entity, field) pairs with more than one pending request.
func (p *PgSQL) DuplicatePendingGroups(ctx context.Context) ([]storage.DuplicatePending, error) {
	var groups []storage.DuplicatePending
	err := p.Builder.From(changeRequestsTable).
		Select(goqu.I("entity_id"), goqu.I("field_key"), goqu.COUNT("*").As("count")).
		Where(goqu.I("status").Eq(string(domain.ChangeStatusPending))).
		GroupBy(goqu.I("entity_id"), goqu.I("field_key")).
		Having(goqu.COUNT("*").Gt(1)).
		Order(goqu.I("entity_id").Asc(), goqu.I("field_key").Asc()).
		Executor().ScanStructsContext(ctx, &groups)
	if err != nil {
		return nil, fmt.Errorf("could not find duplicate pending change requests: %w", err)
	}

	return groups, nil
}
