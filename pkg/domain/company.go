package domain

import (
	"slices"
	"strconv"
	"time"
)

// CompanyID identifies a company profile.
type CompanyID int64

func (id CompanyID) String() string { return strconv.FormatInt(int64(id), 10) }

// CategoryID identifies a directory category.
type CategoryID int64

// MediaRef points to a media asset stored outside the engine. Only the reference
// and its checksum are kept; bytes never pass through the moderation flow.
type MediaRef struct {
	AssetID  string `json:"assetId" validate:"required,max=255"`
	Checksum string `json:"checksum" validate:"required,len=64,hexadecimal"`
}

// Company is the canonical, publicly visible profile of a business.
// It is mutated only when a change request is approved.
type Company struct {
	ID   CompanyID `json:"id"`
	Name string    `json:"name"`

	// Attributes holds the profile fields keyed by field name.
	Attributes map[string]string `json:"attributes"`
	Logo       *MediaRef         `json:"logo,omitempty"`
	Banner     *MediaRef         `json:"banner,omitempty"`
	Categories []CategoryID      `json:"categories"`

	// Version increments by exactly one per applied change.
	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCategory reports whether the company is a member of the category.
func (c *Company) HasCategory(id CategoryID) bool {
	return slices.Contains(c.Categories, id)
}

// Clone returns a deep copy so the caller can mutate it without affecting c.
func (c *Company) Clone() *Company {
	cp := *c
	if c.Attributes != nil {
		cp.Attributes = make(map[string]string, len(c.Attributes))
		for k, v := range c.Attributes {
			cp.Attributes[k] = v
		}
	}
	if c.Logo != nil {
		logo := *c.Logo
		cp.Logo = &logo
	}
	if c.Banner != nil {
		banner := *c.Banner
		cp.Banner = &banner
	}
	cp.Categories = slices.Clone(c.Categories)

	return &cp
}

// CompanyRevision is an append-only record of one applied change. ForwardPatch turns
// the previous company document into the new one, ReversePatch undoes it; both are
// RFC 6902 JSON Patch documents.
type CompanyRevision struct {
	CompanyID    CompanyID `json:"companyId"`
	Version      int64     `json:"version"`
	ChangeID     ChangeID  `json:"changeId"`
	ForwardPatch []byte    `json:"forwardPatch"`
	ReversePatch []byte    `json:"reversePatch"`
	CreatedAt    time.Time `json:"createdAt"`
}
