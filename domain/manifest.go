package domain

import "fmt"

// Manifest is a parsed agent or application manifest. It is kept as a
// generic mapping so arbitrary manifest content round-trips through the
// store unchanged; only the metadata section is interpreted by the core.
type Manifest map[string]any

// EntityKind distinguishes the two manifest-bearing entity kinds.
type EntityKind string

const (
	KindAgent       EntityKind = "agent"
	KindApplication EntityKind = "application"
)

// Collection returns the store collection holding this kind's manifests.
func (k EntityKind) Collection() string {
	if k == KindApplication {
		return CollectionApplications
	}
	return CollectionAgents
}

// OwnerKey returns the field name linking a rating record back to its
// owning manifest. Applications use the plural form; existing stored
// records depend on both spellings staying as they are.
func (k EntityKind) OwnerKey() string {
	if k == KindApplication {
		return "applications_id"
	}
	return "agent_id"
}

// Metadata returns the manifest's metadata section, if present as a
// mapping.
func (m Manifest) Metadata() (map[string]any, bool) {
	meta, ok := m["metadata"].(map[string]any)
	return meta, ok
}

// AssignIdentity stamps the generated entity and ratings identifiers into
// the manifest's metadata. Manifests arrive without either field; both are
// populated by the server before persistence. A manifest without a
// metadata mapping fails with ErrMissingMetadata.
func (m Manifest) AssignIdentity(id, ratingsID string) error {
	meta, ok := m.Metadata()
	if !ok {
		return fmt.Errorf("%w", ErrMissingMetadata)
	}
	meta["id"] = id
	meta["ratings_id"] = ratingsID
	return nil
}

// ID returns the stamped entity identifier, or "" when absent.
func (m Manifest) ID() string {
	return m.metadataString("id")
}

// RatingsID returns the stamped ratings identifier, or "" when absent.
func (m Manifest) RatingsID() string {
	return m.metadataString("ratings_id")
}

func (m Manifest) metadataString(key string) string {
	meta, ok := m.Metadata()
	if !ok {
		return ""
	}
	s, _ := meta[key].(string)
	return s
}
