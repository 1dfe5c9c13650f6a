// Package media defines how the moderation engine looks up media assets that
// change requests reference. Asset bytes live in an external store; only their
// identity and checksum are checked here.
package media

import "context"

// Asset describes a stored media asset.
type Asset struct {
	// ID is the identifier the asset store knows the asset by.
	ID string
	// Checksum is the hex encoded SHA-256 of the asset bytes.
	Checksum string
}

// Resolver looks up assets in the media store.
//
//go:generate mockgen -package mockmedia -source=interface.go -destination=mock/mockmedia.go *
type Resolver interface {
	// Resolve returns the asset, or nil when the store does not know it.
	Resolve(ctx context.Context, assetID string) (*Asset, error)
}
