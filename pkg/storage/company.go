package storage

import (
	"context"
	"moderation/pkg/domain"
)

// CompanyStorage reads and writes canonical company profiles. Writes are expected to
// happen only from the approval flow, inside a transaction.
type CompanyStorage interface {
	// CompanyByID returns the company with its category memberships, or nil when it
	// does not exist. With forUpdate the company row is locked until the surrounding
	// transaction ends.
	CompanyByID(ctx context.Context, ID domain.CompanyID, forUpdate bool) (*domain.Company, error)
	// UpdateCompany writes name, attributes and media references of the company and
	// increments its version, provided the stored version still equals expectedVersion.
	// ErrStaleVersion is returned otherwise. The returned company carries the new version.
	UpdateCompany(ctx context.Context, company domain.Company, expectedVersion int64) (*domain.Company, error)
	// CategoryExists reports whether the category is known.
	CategoryExists(ctx context.Context, ID domain.CategoryID) (bool, error)
	// AddCompanyCategory makes the company a member of the category. Adding an existing
	// membership is a no-op.
	AddCompanyCategory(ctx context.Context, companyID domain.CompanyID, categoryID domain.CategoryID) error
	// RemoveCompanyCategory removes a membership. Removing a missing one is a no-op.
	RemoveCompanyCategory(ctx context.Context, companyID domain.CompanyID, categoryID domain.CategoryID) error
	// StoreCompanyRevision appends a revision record.
	StoreCompanyRevision(ctx context.Context, revision domain.CompanyRevision) error
	// CompanyRevisionByChangeID returns the revision written when the change was
	// applied, or nil.
	CompanyRevisionByChangeID(ctx context.Context, changeID domain.ChangeID) (*domain.CompanyRevision, error)
}
