package domain

//go:generate mockery --name=LinkRepository --output=../mocks --outpkg=mocks --with-expecter

import (
	"context"
)

// LinkRepository is the Link Store port. It is defined here and implemented
// in the data layer.
type LinkRepository interface {
	// FindByCode returns the link with the given code, or nil if absent.
	FindByCode(ctx context.Context, code string) (*Link, error)

	// ExistsByCode reports whether a link with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Insert creates a link with zero clicks. It returns ErrCodeExists when
	// the code violates the unique index.
	Insert(ctx context.Context, code, targetURL string) (*Link, error)

	// ListAll returns every link, newest first.
	ListAll(ctx context.Context) ([]*Link, error)

	// DeleteByCode removes the link and returns it, or nil if absent.
	DeleteByCode(ctx context.Context, code string) (*Link, error)

	// RecordClick atomically increments the click counter, stamps
	// lastClicked and returns the updated link, or nil if absent.
	RecordClick(ctx context.Context, code string) (*Link, error)
}
