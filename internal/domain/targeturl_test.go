package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTargetURL(t *testing.T) {
	tests := []struct {
		name    string
		rawURL  string
		wantErr error
	}{
		{
			name:    "valid https url",
			rawURL:  "https://example.com",
			wantErr: nil,
		},
		{
			name:    "valid http url",
			rawURL:  "http://example.com",
			wantErr: nil,
		},
		{
			name:    "valid url with path",
			rawURL:  "https://example.com/path/to/page",
			wantErr: nil,
		},
		{
			name:    "valid url with query",
			rawURL:  "https://example.com?foo=bar&baz=qux",
			wantErr: nil,
		},
		{
			name:    "valid url with port",
			rawURL:  "http://localhost:3000/dashboard",
			wantErr: nil,
		},
		{
			name:    "non-http scheme",
			rawURL:  "ftp://files.example.org/report.pdf",
			wantErr: nil,
		},
		{
			name:    "empty url",
			rawURL:  "",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "plain text",
			rawURL:  "not a url",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "no scheme",
			rawURL:  "example.com",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "relative path",
			rawURL:  "/relative/path",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "scheme without host",
			rawURL:  "https://",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "opaque url",
			rawURL:  "javascript:alert(1)",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "space in host",
			rawURL:  "http://exa mple.com",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "host-less mailto",
			rawURL:  "mailto:someone@example.com",
			wantErr: ErrInvalidURL,
		},
		{
			name:    "long url",
			rawURL:  "https://example.com/" + strings.Repeat("a", 10000),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTargetURL(tt.rawURL)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, IsValidTargetURL(tt.rawURL))
				return
			}
			assert.NoError(t, err)
			assert.True(t, IsValidTargetURL(tt.rawURL))
		})
	}
}
