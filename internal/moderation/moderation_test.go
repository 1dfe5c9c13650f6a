package moderation_test

import (
	"context"
	"errors"
	"moderation/internal/moderation"
	"moderation/pkg/domain"
	"moderation/pkg/eventsink"
	"moderation/pkg/media"
	"moderation/pkg/serrors"
	"moderation/pkg/storage"
	"testing"
	"time"

	mockeventsink "moderation/pkg/eventsink/mock"
	mockmedia "moderation/pkg/media/mock"
	mockstorage "moderation/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const checksum = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

var (
	ownerID    = domain.UserID(uuid.MustParse("0b3c1a56-4a4c-4d1a-9d55-0e0e5d8f3e11"))
	reviewerID = domain.UserID(uuid.MustParse("7e2f1c9a-3b8d-4f0e-a1c2-5d6e7f8a9b0c"))
	changeID   = domain.ChangeID(uuid.MustParse("c0ffee00-1111-4222-8333-444455556666"))
	otherID    = domain.ChangeID(uuid.MustParse("deadbeef-1111-4222-8333-444455556666"))
)

type testDeps struct {
	ctrl  *gomock.Controller
	st    *mockstorage.MockStorage
	media *mockmedia.MockResolver
	sink  *mockeventsink.MockSink
	svc   *moderation.Service
}

func newTestService(t *testing.T, opts moderation.Options) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	resolver := mockmedia.NewMockResolver(ctrl)
	sink := mockeventsink.NewMockSink(ctrl)
	svc, err := moderation.New(st, resolver, sink, opts)
	require.NoError(t, err)

	return testDeps{ctrl: ctrl, st: st, media: resolver, sink: sink, svc: svc}
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) *gomock.Call {
	t.Helper()

	return m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

// jobRecorder is the AddJob half of a storage mock recorder.
type jobRecorder interface {
	AddJob(ctx, args, opts any) *gomock.Call
}

// expectNotify expects one notification job per status, in any order, enqueued
// through m.
func expectNotify(t *testing.T, m jobRecorder, statuses ...domain.ChangeStatus) {
	t.Helper()

	want := map[domain.ChangeStatus]bool{}
	for _, s := range statuses {
		want[s] = true
	}
	m.AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Times(len(statuses)).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(moderation.NotifyJobArgs)
			require.True(t, ok)
			require.True(t, want[job.Status], "unexpected notification %s", job.Status)
			delete(want, job.Status)

			return true, nil
		},
	)
}

func strPtr(s string) *string { return &s }

func company(version int64) *domain.Company {
	return &domain.Company{
		ID:         42,
		Name:       "Acme Bakery",
		Attributes: map[string]string{"phone": "555-0100"},
		Categories: []domain.CategoryID{1},
		Version:    version,
	}
}

func fieldChange(status domain.ChangeStatus, key, newValue string, version int64) *domain.ChangeRequest {
	return &domain.ChangeRequest{
		ID:                    changeID,
		EntityType:            domain.EntityTypeProfileField,
		EntityID:              42,
		FieldKey:              key,
		Payload:               domain.Payload{Field: &domain.FieldDiff{NewValue: strPtr(newValue)}},
		Status:                status,
		SubmittedBy:           ownerID,
		EntityVersionAtSubmit: version,
		CreatedAt:             time.Now().UTC(),
	}
}

func logoChange(status domain.ChangeStatus) *domain.ChangeRequest {
	return &domain.ChangeRequest{
		ID:                    changeID,
		EntityType:            domain.EntityTypeLogo,
		EntityID:              42,
		FieldKey:              domain.FieldKeyLogo,
		Payload:               domain.Payload{Media: &domain.MediaRef{AssetID: "logo-1", Checksum: checksum}},
		Status:                status,
		SubmittedBy:           ownerID,
		EntityVersionAtSubmit: 3,
	}
}

func fieldSubmission(key, value string) moderation.SubmitRequest {
	return moderation.SubmitRequest{
		EntityType:  domain.EntityTypeProfileField,
		EntityID:    42,
		FieldKey:    key,
		Payload:     domain.Payload{Field: &domain.FieldDiff{OldValue: strPtr("555-0100"), NewValue: strPtr(value)}},
		SubmittedBy: ownerID,
	}
}

func echoCreate(id domain.ChangeID) func(context.Context, domain.ChangeRequest) (*domain.ChangeRequest, error) {
	return func(_ context.Context, c domain.ChangeRequest) (*domain.ChangeRequest, error) {
		c.ID = id
		c.CreatedAt = time.Now().UTC()

		return &c, nil
	}
}

func TestNew_UnknownConflictPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := moderation.New(mockstorage.NewMockStorage(ctrl),
		mockmedia.NewMockResolver(ctrl),
		mockeventsink.NewMockSink(ctrl),
		moderation.Options{ConflictPolicy: "coinflip"})
	require.Error(t, err)
}

func TestService_SubmitChange_Validation(t *testing.T) {
	cases := []struct {
		name string
		req  moderation.SubmitRequest
	}{
		{
			name: "unknown entity type",
			req: moderation.SubmitRequest{
				EntityType: "ADDRESS", EntityID: 42, SubmittedBy: ownerID,
				Payload: domain.Payload{Field: &domain.FieldDiff{NewValue: strPtr("x")}},
			},
		},
		{
			name: "missing submitter",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeProfileField, EntityID: 42, FieldKey: "phone",
				Payload: domain.Payload{Field: &domain.FieldDiff{NewValue: strPtr("x")}},
			},
		},
		{
			name: "invalid field key",
			req:  fieldSubmission("Phone Number", "555-0199"),
		},
		{
			name: "missing new value",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeProfileField, EntityID: 42, FieldKey: "phone", SubmittedBy: ownerID,
				Payload: domain.Payload{Field: &domain.FieldDiff{}},
			},
		},
		{
			name: "payload does not match type",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeLogo, EntityID: 42, SubmittedBy: ownerID,
				Payload: domain.Payload{Field: &domain.FieldDiff{NewValue: strPtr("x")}},
			},
		},
		{
			name: "sentinel key mismatch",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeBanner, EntityID: 42, FieldKey: domain.FieldKeyLogo, SubmittedBy: ownerID,
				Payload: domain.Payload{Media: &domain.MediaRef{AssetID: "b-1", Checksum: checksum}},
			},
		},
		{
			name: "bad checksum",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeBanner, EntityID: 42, SubmittedBy: ownerID,
				Payload: domain.Payload{Media: &domain.MediaRef{AssetID: "b-1", Checksum: "abc"}},
			},
		},
		{
			name: "unknown category operation",
			req: moderation.SubmitRequest{
				EntityType: domain.EntityTypeCategoryMembership, EntityID: 42, SubmittedBy: ownerID,
				Payload: domain.Payload{Category: &domain.CategoryChange{Operation: "toggle", CategoryID: 3}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestService(t, moderation.Options{})

			_, err := d.svc.SubmitChange(context.Background(), tc.req)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestService_SubmitChange_NoPending(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), domain.CompanyID(42), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), domain.CompanyID(42), "phone", true).Return(nil, nil)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusPending)
	})

	change, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.NoError(t, err)
	require.Equal(t, changeID, change.ID)
	require.Equal(t, domain.ChangeStatusPending, change.Status)
	require.Equal(t, int64(3), change.EntityVersionAtSubmit)
	require.Equal(t, ownerID, change.SubmittedBy)
}

func TestService_SubmitChange_SupersedesPending(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	existing := fieldChange(domain.ChangeStatusPending, "phone", "555-0111", 3)
	existing.ID = otherID

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), domain.CompanyID(42), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), domain.CompanyID(42), "phone", true).Return(existing, nil)
		tx.EXPECT().TransitionChangeRequest(gomock.Any(),
			otherID,
			domain.ChangeStatusPending,
			domain.ChangeStatusSuperseded,
			storage.ChangeTransition{}).DoAndReturn(
			func(_ context.Context,
				_ domain.ChangeID,
				_, to domain.ChangeStatus,
				_ storage.ChangeTransition) (*domain.ChangeRequest, error) {
				res := *existing
				res.Status = to
				res.ResolvedAt = time.Now().UTC()

				return &res, nil
			})
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusSuperseded, domain.ChangeStatusPending)
	})

	change, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.NoError(t, err)
	require.Equal(t, changeID, change.ID)
}

func TestService_SubmitChange_PendingResolvedMeanwhile(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	existing := fieldChange(domain.ChangeStatusPending, "phone", "555-0111", 3)
	existing.ID = otherID

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(existing, nil)
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), otherID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrStaleStatus)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusPending)
	})

	_, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.NoError(t, err)
}

func TestService_SubmitChange_RejectPolicy(t *testing.T) {
	d := newTestService(t, moderation.Options{ConflictPolicy: moderation.ConflictPolicyReject})

	existing := fieldChange(domain.ChangeStatusPending, "phone", "555-0111", 3)
	existing.ID = otherID

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(existing, nil)
	})

	_, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_SubmitChange_CompanyNotFound(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(nil, nil)
	})

	_, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_SubmitChange_UnknownCategory(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().CategoryExists(gomock.Any(), domain.CategoryID(9)).Return(false, nil)
	})

	_, err := d.svc.SubmitChange(context.Background(), moderation.SubmitRequest{
		EntityType:  domain.EntityTypeCategoryMembership,
		EntityID:    42,
		Payload:     domain.Payload{Category: &domain.CategoryChange{Operation: domain.CategoryOperationAdd, CategoryID: 9}},
		SubmittedBy: ownerID,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_SubmitChange_FillsSentinelKey(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), domain.FieldKeyLogo, true).Return(nil, nil)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusPending)
	})

	change, err := d.svc.SubmitChange(context.Background(), moderation.SubmitRequest{
		EntityType:  domain.EntityTypeLogo,
		EntityID:    42,
		Payload:     domain.Payload{Media: &domain.MediaRef{AssetID: "logo-1", Checksum: "9F86D081884C7D659A2FEAA0C55AD015A3BF4F1B2B0B822CD15D6C15B0F00A08"}},
		SubmittedBy: ownerID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.FieldKeyLogo, change.FieldKey)
	require.Equal(t, checksum, change.Payload.Media.Checksum)
}

func TestService_SubmitChange_RetriesLostRace(t *testing.T) {
	d := newTestService(t, moderation.Options{SubmitRetries: 2})

	first := expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(nil, nil)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicatePending)
	})
	existing := fieldChange(domain.ChangeStatusPending, "phone", "555-0111", 3)
	existing.ID = otherID
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(existing, nil)
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), otherID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(existing, nil)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusSuperseded, domain.ChangeStatusPending)
	}).After(first)

	change, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.NoError(t, err)
	require.Equal(t, changeID, change.ID)
}

func TestService_SubmitChange_RetriesExhausted(t *testing.T) {
	d := newTestService(t, moderation.Options{SubmitRetries: 2})

	for range 2 {
		expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
			tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(nil, nil)
			tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicatePending)
		})
	}

	_, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_SubmitChange_EnqueueFailureFailsSubmission(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	existing := fieldChange(domain.ChangeStatusPending, "phone", "555-0111", 3)
	existing.ID = otherID

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), false).Return(company(3), nil)
		tx.EXPECT().PendingChangeRequest(gomock.Any(), gomock.Any(), "phone", true).Return(existing, nil)
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), otherID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(existing, nil)
		tx.EXPECT().CreateChangeRequest(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate(changeID))
		// the superseded notification is enqueued, the pending one fails
		gomock.InOrder(
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil),
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down")),
		)
	})

	change, err := d.svc.SubmitChange(context.Background(), fieldSubmission("phone", "555-0199"))
	require.ErrorContains(t, err, "queue down")
	require.NotErrorIs(t, err, serrors.ErrConflict)
	require.Nil(t, change)
}

func TestService_Approve_ProfileField(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := fieldChange(domain.ChangeStatusPending, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), domain.CompanyID(42), true).Return(company(3), nil)
		tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
		tx.EXPECT().UpdateCompany(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, c domain.Company, _ int64) (*domain.Company, error) {
				require.Equal(t, "555-0199", c.Attributes["phone"])
				c.Version++

				return &c, nil
			})
		tx.EXPECT().StoreCompanyRevision(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rev domain.CompanyRevision) error {
				require.Equal(t, int64(4), rev.Version)
				require.Equal(t, changeID, rev.ChangeID)
				require.JSONEq(t, `[{"op":"replace","path":"/attributes/phone","value":"555-0199"}]`,
					string(rev.ForwardPatch))
				require.JSONEq(t, `[{"op":"replace","path":"/attributes/phone","value":"555-0100"}]`,
					string(rev.ReversePatch))

				return nil
			})
		tx.EXPECT().TransitionChangeRequest(gomock.Any(),
			changeID,
			domain.ChangeStatusPending,
			domain.ChangeStatusApproved,
			gomock.Any()).DoAndReturn(
			func(_ context.Context,
				_ domain.ChangeID,
				_, to domain.ChangeStatus,
				tr storage.ChangeTransition) (*domain.ChangeRequest, error) {
				require.NotNil(t, tr.ReviewedBy)
				require.Equal(t, reviewerID, *tr.ReviewedBy)
				res := *pending
				res.Status = to
				res.ReviewedBy = tr.ReviewedBy

				return &res, nil
			})
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusApproved)
	})

	res, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.NoError(t, err)
	require.False(t, res.AlreadyResolved)
	require.Equal(t, int64(4), res.EntityVersion)
	require.Equal(t, domain.ChangeStatusApproved, res.Change.Status)
}

func TestService_Approve_NotFound(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(nil, nil)

	_, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Approve_RequiresReviewer(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	_, err := d.svc.Approve(context.Background(), changeID, domain.UserID{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Approve_StaleVersion(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := fieldChange(domain.ChangeStatusPending, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), domain.CompanyID(42), true).Return(company(5), nil)
		tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	})

	_, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_Approve_ConcurrentVersionBump(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := fieldChange(domain.ChangeStatusPending, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), true).Return(company(3), nil)
		tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
		tx.EXPECT().UpdateCompany(gomock.Any(), gomock.Any(), int64(3)).Return(nil, storage.ErrStaleVersion)
	})

	_, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_Approve_EnqueueFailureRollsBack(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := fieldChange(domain.ChangeStatusPending, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	var committed bool
	d.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(d.ctrl)
			tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), true).Return(company(3), nil)
			tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
			tx.EXPECT().UpdateCompany(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
				func(_ context.Context, c domain.Company, _ int64) (*domain.Company, error) {
					c.Version++

					return &c, nil
				})
			tx.EXPECT().StoreCompanyRevision(gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().TransitionChangeRequest(gomock.Any(), changeID, gomock.Any(), gomock.Any(), gomock.Any()).
				Return(fieldChange(domain.ChangeStatusApproved, "phone", "555-0199", 3), nil)
			tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))

			err := cb(tx)
			committed = err == nil

			return err
		})

	res, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.ErrorContains(t, err, "queue down")
	require.Nil(t, res)
	require.False(t, committed)
}

func TestService_Approve_AlreadyApproved(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	approved := fieldChange(domain.ChangeStatusApproved, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(approved, nil)
	d.st.EXPECT().CompanyRevisionByChangeID(gomock.Any(), changeID).
		Return(&domain.CompanyRevision{CompanyID: 42, Version: 4, ChangeID: changeID}, nil)

	res, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.NoError(t, err)
	require.True(t, res.AlreadyResolved)
	require.Equal(t, int64(4), res.EntityVersion)
}

func TestService_Approve_Superseded(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	superseded := fieldChange(domain.ChangeStatusSuperseded, "phone", "555-0199", 3)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(superseded, nil)

	_, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.ErrorIs(t, err, serrors.ErrAlreadyResolved)
	require.Equal(t, serrors.ErrAlreadyResolved, serrors.KindOf(err))

	var resolved *moderation.AlreadyResolvedError
	require.ErrorAs(t, err, &resolved)
	require.Equal(t, domain.ChangeStatusSuperseded, resolved.Change.Status)
}

func TestService_Approve_LostRaceToConcurrentApproval(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := fieldChange(domain.ChangeStatusPending, "phone", "555-0199", 3)
	approved := fieldChange(domain.ChangeStatusApproved, "phone", "555-0199", 3)

	gomock.InOrder(
		d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil),
		expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), true).Return(company(4), nil)
			tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(approved, nil)
		}),
		d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(approved, nil),
		d.st.EXPECT().CompanyRevisionByChangeID(gomock.Any(), changeID).
			Return(&domain.CompanyRevision{Version: 4, ChangeID: changeID}, nil),
	)

	res, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.NoError(t, err)
	require.True(t, res.AlreadyResolved)
	require.Equal(t, int64(4), res.EntityVersion)
}

func TestService_Approve_MediaPreflight(t *testing.T) {
	cases := []struct {
		name  string
		asset *media.Asset
		err   error
	}{
		{name: "missing asset"},
		{name: "checksum mismatch", asset: &media.Asset{ID: "logo-1", Checksum: "00" + checksum[2:]}},
		{name: "resolver error", err: errors.New("connection refused")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestService(t, moderation.Options{})
			d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(logoChange(domain.ChangeStatusPending), nil)
			d.media.EXPECT().Resolve(gomock.Any(), "logo-1").Return(tc.asset, tc.err)

			_, err := d.svc.Approve(context.Background(), changeID, reviewerID)
			require.ErrorIs(t, err, serrors.ErrApplyFailure)
		})
	}
}

func TestService_Approve_Logo(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	pending := logoChange(domain.ChangeStatusPending)

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
	d.media.EXPECT().Resolve(gomock.Any(), "logo-1").
		Return(&media.Asset{ID: "logo-1", Checksum: checksum}, nil)
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CompanyByID(gomock.Any(), gomock.Any(), true).Return(company(3), nil)
		tx.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(pending, nil)
		tx.EXPECT().UpdateCompany(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, c domain.Company, _ int64) (*domain.Company, error) {
				require.NotNil(t, c.Logo)
				require.Equal(t, "logo-1", c.Logo.AssetID)
				c.Version++

				return &c, nil
			})
		tx.EXPECT().StoreCompanyRevision(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), changeID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context,
				_ domain.ChangeID,
				_, to domain.ChangeStatus,
				_ storage.ChangeTransition) (*domain.ChangeRequest, error) {
				res := *pending
				res.Status = to

				return &res, nil
			})
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusApproved)
	})

	res, err := d.svc.Approve(context.Background(), changeID, reviewerID)
	require.NoError(t, err)
	require.Equal(t, int64(4), res.EntityVersion)
}

func TestService_Reject(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionChangeRequest(gomock.Any(),
			changeID,
			domain.ChangeStatusPending,
			domain.ChangeStatusRejected,
			gomock.Any()).DoAndReturn(
			func(_ context.Context,
				_ domain.ChangeID,
				_, to domain.ChangeStatus,
				tr storage.ChangeTransition) (*domain.ChangeRequest, error) {
				require.Equal(t, "blurry photo", tr.RejectionReason)
				res := *logoChange(to)
				res.ReviewedBy = tr.ReviewedBy
				res.RejectionReason = tr.RejectionReason

				return &res, nil
			})
		expectNotify(t, tx.EXPECT(), domain.ChangeStatusRejected)
	})

	res, err := d.svc.Reject(context.Background(), changeID, reviewerID, "  blurry photo ")
	require.NoError(t, err)
	require.False(t, res.AlreadyResolved)
	require.Equal(t, domain.ChangeStatusRejected, res.Change.Status)
	require.Equal(t, "blurry photo", res.Change.RejectionReason)
}

func TestService_Reject_EnqueueFailureRollsBack(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), changeID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(logoChange(domain.ChangeStatusRejected), nil)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))
	})

	res, err := d.svc.Reject(context.Background(), changeID, reviewerID, "blurry photo")
	require.ErrorContains(t, err, "queue down")
	require.Nil(t, res)
}

func TestService_Reject_BlankReason(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	_, err := d.svc.Reject(context.Background(), changeID, reviewerID, " \t ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Reject_AlreadyResolved(t *testing.T) {
	cases := []struct {
		name     string
		status   domain.ChangeStatus
		idempote bool
	}{
		{name: "rejected", status: domain.ChangeStatusRejected, idempote: true},
		{name: "approved", status: domain.ChangeStatusApproved},
		{name: "superseded", status: domain.ChangeStatusSuperseded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestService(t, moderation.Options{})
			expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().TransitionChangeRequest(gomock.Any(), changeID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrStaleStatus)
			})
			d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(logoChange(tc.status), nil)

			res, err := d.svc.Reject(context.Background(), changeID, reviewerID, "duplicate")
			if tc.idempote {
				require.NoError(t, err)
				require.True(t, res.AlreadyResolved)

				return
			}
			require.ErrorIs(t, err, serrors.ErrAlreadyResolved)
		})
	}
}

func TestService_Reject_NotFound(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	expectWithTx(t, d.ctrl, d.st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().TransitionChangeRequest(gomock.Any(), changeID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
	})

	_, err := d.svc.Reject(context.Background(), changeID, reviewerID, "spam")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_ListPending(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	entityID := domain.CompanyID(42)

	d.st.EXPECT().ListPendingChangeRequests(gomock.Any(), storage.PendingFilter{EntityID: &entityID}).
		Return([]domain.ChangeRequest{*fieldChange(domain.ChangeStatusPending, "phone", "1", 3)}, nil)

	res, err := d.svc.ListPending(context.Background(), &entityID)
	require.NoError(t, err)
	require.Len(t, res, 1)
}

func TestService_DeliverNotification(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	rejected := logoChange(domain.ChangeStatusRejected)
	rejected.ReviewedBy = &reviewerID
	rejected.RejectionReason = "blurry"
	rejected.ResolvedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rl := eventsink.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(rejected, nil)
	d.sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e eventsink.Event) (eventsink.RateLimitStatus, error) {
			require.Equal(t, changeID.String()+":REJECTED", e.ID)
			require.Equal(t, domain.ChangeStatusRejected, e.Status)
			require.Equal(t, "blurry", e.RejectionReason)
			require.Equal(t, rejected.ResolvedAt, e.OccurredAt)

			return rl, nil
		})

	delivery, err := d.svc.DeliverNotification(context.Background(),
		moderation.NotifyJobArgs{ChangeID: changeID, Status: domain.ChangeStatusRejected})
	require.NoError(t, err)
	require.Equal(t, rl, delivery.RateLimit)
	require.Equal(t, domain.CompanyID(42), delivery.Change.EntityID)
}

func TestService_DeliverNotification_PendingEventOfResolvedChange(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	approved := logoChange(domain.ChangeStatusApproved)
	approved.ReviewedBy = &reviewerID

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(approved, nil)
	d.sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e eventsink.Event) (eventsink.RateLimitStatus, error) {
			require.Equal(t, domain.ChangeStatusPending, e.Status)
			require.Nil(t, e.ReviewedBy)

			return eventsink.RateLimitStatus{}, nil
		})

	_, err := d.svc.DeliverNotification(context.Background(),
		moderation.NotifyJobArgs{ChangeID: changeID, Status: domain.ChangeStatusPending})
	require.NoError(t, err)
}

func TestService_DeliverNotification_Errors(t *testing.T) {
	d := newTestService(t, moderation.Options{})

	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(nil, nil)
	_, err := d.svc.DeliverNotification(context.Background(),
		moderation.NotifyJobArgs{ChangeID: changeID, Status: domain.ChangeStatusPending})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	reset := time.Now().Add(time.Minute)
	d.st.EXPECT().ChangeRequestByID(gomock.Any(), changeID).Return(logoChange(domain.ChangeStatusPending), nil)
	d.sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).
		Return(eventsink.RateLimitStatus{Limit: 1, ResetAt: reset}, serrors.KindOnly(serrors.ErrRateLimited))
	delivery, err := d.svc.DeliverNotification(context.Background(),
		moderation.NotifyJobArgs{ChangeID: changeID, Status: domain.ChangeStatusPending})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, reset, delivery.RateLimit.ResetAt)
}

func TestService_CheckInvariants(t *testing.T) {
	d := newTestService(t, moderation.Options{})
	groups := []storage.DuplicatePending{{EntityID: 42, FieldKey: "phone", Count: 2}}
	d.st.EXPECT().DuplicatePendingGroups(gomock.Any()).Return(groups, nil)

	res, err := d.svc.CheckInvariants(context.Background())
	require.NoError(t, err)
	require.Equal(t, groups, res)
}
