package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"moderation/pkg/domain"
	"moderation/pkg/storage"
	"slices"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/wI2L/jsondiff"
)

// applyChange returns a copy of company with change applied. Category memberships
// live in their own table and are written through tx right away; everything else is
// persisted by the caller.
func applyChange(ctx context.Context,
	tx storage.CompanyStorage,
	company *domain.Company,
	change domain.ChangeRequest) (*domain.Company, error) {
	next := company.Clone()

	switch change.EntityType {
	case domain.EntityTypeProfileField:
		attrs, err := applyFieldDiff(next.Attributes, change.FieldKey, *change.Payload.Field)
		if err != nil {
			return nil, err
		}
		next.Attributes = attrs
	case domain.EntityTypeLogo:
		ref := *change.Payload.Media
		next.Logo = &ref
	case domain.EntityTypeBanner:
		ref := *change.Payload.Media
		next.Banner = &ref
	case domain.EntityTypeCategoryMembership:
		if err := applyCategoryChange(ctx, tx, next, *change.Payload.Category); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown entity type %q", change.EntityType)
	}

	return next, nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1") //nolint: gochecknoglobals

// applyFieldDiff sets attrs[key] to the new value by patching the attribute document.
func applyFieldDiff(attrs map[string]string, key string, diff domain.FieldDiff) (map[string]string, error) {
	if attrs == nil {
		attrs = map[string]string{}
	}
	doc, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("could not encode attributes: %w", err)
	}

	ops, err := json.Marshal([]map[string]any{{
		"op":    "add",
		"path":  "/" + pointerEscaper.Replace(key),
		"value": *diff.NewValue,
	}})
	if err != nil {
		return nil, fmt.Errorf("could not encode patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	patched, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}

	out := map[string]string{}
	if err := json.Unmarshal(patched, &out); err != nil {
		return nil, fmt.Errorf("could not decode attributes: %w", err)
	}

	return out, nil
}

// applyCategoryChange adds or removes a membership. Adding an existing membership or
// removing a missing one leaves the set as it is.
func applyCategoryChange(ctx context.Context,
	tx storage.CompanyStorage,
	company *domain.Company,
	change domain.CategoryChange) error {
	switch change.Operation {
	case domain.CategoryOperationAdd:
		exists, err := tx.CategoryExists(ctx, change.CategoryID)
		if err != nil {
			return fmt.Errorf("could not check category: %w", err)
		}
		if !exists {
			return fmt.Errorf("category %d does not exist", change.CategoryID)
		}
		if company.HasCategory(change.CategoryID) {
			return nil
		}
		if err := tx.AddCompanyCategory(ctx, company.ID, change.CategoryID); err != nil {
			return fmt.Errorf("could not add category: %w", err)
		}
		company.Categories = append(company.Categories, change.CategoryID)
		slices.Sort(company.Categories)
	case domain.CategoryOperationRemove:
		if !company.HasCategory(change.CategoryID) {
			return nil
		}
		if err := tx.RemoveCompanyCategory(ctx, company.ID, change.CategoryID); err != nil {
			return fmt.Errorf("could not remove category: %w", err)
		}
		company.Categories = slices.DeleteFunc(company.Categories, func(id domain.CategoryID) bool {
			return id == change.CategoryID
		})
	default:
		return fmt.Errorf("unknown category operation %q", change.Operation)
	}

	return nil
}

// companyDocument is the part of a company tracked by revisions.
type companyDocument struct {
	Name       string              `json:"name"`
	Attributes map[string]string   `json:"attributes"`
	Logo       *domain.MediaRef    `json:"logo"`
	Banner     *domain.MediaRef    `json:"banner"`
	Categories []domain.CategoryID `json:"categories"`
}

func documentOf(c *domain.Company) ([]byte, error) {
	attrs := c.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	categories := c.Categories
	if categories == nil {
		categories = []domain.CategoryID{}
	}

	return json.Marshal(companyDocument{
		Name:       c.Name,
		Attributes: attrs,
		Logo:       c.Logo,
		Banner:     c.Banner,
		Categories: categories,
	})
}

// newRevision records the JSON patches between the company before and after a change.
func newRevision(before, after *domain.Company, changeID domain.ChangeID) (*domain.CompanyRevision, error) {
	beforeDoc, err := documentOf(before)
	if err != nil {
		return nil, fmt.Errorf("could not encode company: %w", err)
	}
	afterDoc, err := documentOf(after)
	if err != nil {
		return nil, fmt.Errorf("could not encode company: %w", err)
	}

	forward, err := encodePatch(beforeDoc, afterDoc)
	if err != nil {
		return nil, err
	}
	reverse, err := encodePatch(afterDoc, beforeDoc)
	if err != nil {
		return nil, err
	}

	return &domain.CompanyRevision{
		CompanyID:    after.ID,
		Version:      after.Version,
		ChangeID:     changeID,
		ForwardPatch: forward,
		ReversePatch: reverse,
	}, nil
}

func encodePatch(source, target []byte) ([]byte, error) {
	patch, err := jsondiff.CompareJSON(source, target)
	if err != nil {
		return nil, fmt.Errorf("could not diff company: %w", err)
	}
	if len(patch) == 0 {
		return []byte("[]"), nil
	}

	out, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("could not encode patch: %w", err)
	}

	return out, nil
}
