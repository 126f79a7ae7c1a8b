package domain

import "errors"

// Sentinel errors for the registry core. Handlers map these onto HTTP
// status codes in one place; everything else wraps them with context.
var (
	// ErrUnsupportedContentType indicates a Content-Type or Accept header
	// that is neither JSON nor YAML.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedContent indicates a body that is empty or cannot be
	// parsed as the declared encoding.
	ErrMalformedContent = errors.New("malformed content")

	// ErrMissingMetadata indicates a manifest without the required
	// metadata section.
	ErrMissingMetadata = errors.New("metadata not found in content")

	// ErrRatingsNotFound indicates a ratings id with no document in the
	// ratings collection.
	ErrRatingsNotFound = errors.New("ratings id not found")

	// ErrRateLimited indicates the embedding service rejected a request
	// with a rate limit. It is surfaced to the caller, never retried.
	ErrRateLimited = errors.New("embedding service rate limited")

	// ErrStoreUninitialized indicates the collections were not created
	// before first use.
	ErrStoreUninitialized = errors.New("collection store not initialized")
)
