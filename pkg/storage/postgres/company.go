package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	companiesTable         = "companies"
	categoriesTable        = "categories"
	companyCategoriesTable = "company_categories"
	companyRevisionsTable  = "company_revisions"
)

// CompanyByID returns a company with its category memberships, or nil when it does
// not exist. forUpdate locks the company row for the rest of the transaction.
func (p *PgSQL) CompanyByID(ctx context.Context, id domain.CompanyID, forUpdate bool) (*domain.Company, error) {
	ds := p.Builder.From(companiesTable).Where(goqu.I("id").Eq(int64(id)))
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgCompany
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	categories, err := p.companyCategories(ctx, id)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(categories)
}

func (p *PgSQL) companyCategories(ctx context.Context, id domain.CompanyID) ([]int64, error) {
	var categories []int64
	err := p.Builder.From(companyCategoriesTable).
		Select(goqu.I("category_id")).
		Where(goqu.I("company_id").Eq(int64(id))).
		Order(goqu.I("category_id").Asc()).
		Executor().ScanValsContext(ctx, &categories)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company categories: %w", err)
	}

	return categories, nil
}

// UpdateCompany writes the mutable columns of the company and bumps its version,
// guarded by the expected version.
func (p *PgSQL) UpdateCompany(ctx context.Context,
	company domain.Company,
	expectedVersion int64) (*domain.Company, error) {
	attributes := company.Attributes
	if attributes == nil {
		attributes = map[string]string{}
	}
	attrs, err := json.Marshal(attributes)
	if err != nil {
		return nil, fmt.Errorf("could not marshal company attributes: %w", err)
	}
	logo, err := mediaRefValue(company.Logo)
	if err != nil {
		return nil, err
	}
	banner, err := mediaRefValue(company.Banner)
	if err != nil {
		return nil, err
	}

	var row PgCompany
	found, err := p.Builder.Update(companiesTable).
		Set(goqu.Record{
			"name":       company.Name,
			"attributes": string(attrs),
			"logo":       logo,
			"banner":     banner,
			"version":    goqu.L("version + 1"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(int64(company.ID)),
			goqu.I("version").Eq(expectedVersion),
		).Returning(&PgCompany{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update company in pg: %w", err)
	}
	if !found {
		return nil, storage.ErrStaleVersion
	}

	categories := make([]int64, 0, len(company.Categories))
	for _, c := range company.Categories {
		categories = append(categories, int64(c))
	}

	return row.ToDomain(categories)
}

// CategoryExists reports whether a category with the given id exists.
func (p *PgSQL) CategoryExists(ctx context.Context, id domain.CategoryID) (bool, error) {
	count, err := p.Builder.From(categoriesTable).
		Where(goqu.I("id").Eq(int64(id))).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check category existence: %w", err)
	}

	return count > 0, nil
}

func (p *PgSQL) AddCompanyCategory(ctx context.Context, companyID domain.CompanyID, categoryID domain.CategoryID) error {
	_, err := p.Builder.Insert(companyCategoriesTable).
		Rows(goqu.Record{
			"company_id":  int64(companyID),
			"category_id": int64(categoryID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add company category: %w", err)
	}

	return nil
}

func (p *PgSQL) RemoveCompanyCategory(ctx context.Context, companyID domain.CompanyID, categoryID domain.CategoryID) error {
	_, err := p.Builder.Delete(companyCategoriesTable).
		Where(
			goqu.I("company_id").Eq(int64(companyID)),
			goqu.I("category_id").Eq(int64(categoryID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not remove company category: %w", err)
	}

	return nil
}

// StoreCompanyRevision appends a revision row. Revisions are never updated.
func (p *PgSQL) StoreCompanyRevision(ctx context.Context, revision domain.CompanyRevision) error {
	var row PgCompanyRevision
	row.FromDomain(revision)

	_, err := p.Builder.Insert(companyRevisionsTable).
		Rows(row).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store company revision: %w", err)
	}

	return nil
}

func (p *PgSQL) CompanyRevisionByChangeID(ctx context.Context,
	changeID domain.ChangeID) (*domain.CompanyRevision, error) {
	var row PgCompanyRevision
	found, err := p.Builder.From(companyRevisionsTable).
		Where(goqu.I("change_id").Eq(uuid.UUID(changeID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch company revision: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
