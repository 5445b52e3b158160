package domain

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ValidateTargetURL checks that raw is a well-formed absolute URL: it must
// carry a scheme and a host. Reachability is not checked.
func ValidateTargetURL(raw string) error {
	if err := validation.Validate(raw,
		validation.Required.Error("target URL is required"),
		is.RequestURL.Error("target URL must be absolute"),
	); err != nil {
		return ErrInvalidURL.WithCause(err)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL.WithCause(err)
	}
	if parsed.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// IsValidTargetURL reports whether raw passes ValidateTargetURL.
func IsValidTargetURL(raw string) bool {
	return ValidateTargetURL(raw) == nil
}
