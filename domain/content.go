package domain

import (
	"fmt"
	"strings"
)

// ContentType identifies one of the two manifest encodings the service
// accepts and produces.
type ContentType int

const (
	ContentJSON ContentType = iota
	ContentYAML
)

// MediaType returns the canonical media type string for the encoding.
func (c ContentType) MediaType() string {
	if c == ContentYAML {
		return "application/x-yaml"
	}
	return "application/json"
}

// ParseContentType maps a Content-Type or Accept header value onto a
// ContentType. Only application/json, application/x-yaml and text/yaml
// are recognized; anything else fails with ErrUnsupportedContentType.
func ParseContentType(header string) (ContentType, error) {
	mediaType := header
	if idx := strings.IndexByte(mediaType, ';'); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch mediaType {
	case "application/json":
		return ContentJSON, nil
	case "application/x-yaml", "text/yaml":
		return ContentYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedContentType, header)
	}
}
