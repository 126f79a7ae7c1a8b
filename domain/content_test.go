package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		header  string
		want    ContentType
		wantErr bool
	}{
		{header: "application/json", want: ContentJSON},
		{header: "application/json; charset=utf-8", want: ContentJSON},
		{header: "application/x-yaml", want: ContentYAML},
		{header: "text/yaml", want: ContentYAML},
		{header: "Application/JSON", want: ContentJSON},
		{header: "text/plain", wantErr: true},
		{header: "*/*", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseContentType(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedContentType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMediaType(t *testing.T) {
	assert.Equal(t, "application/json", ContentJSON.MediaType())
	assert.Equal(t, "application/x-yaml", ContentYAML.MediaType())
}
