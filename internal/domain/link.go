package domain

import "time"

// Link is the aggregate root for a shortened link.
// Code and target are immutable; clicks only move through the store's
// atomic increment, so the aggregate has no mutators.
type Link struct {
	id          int64
	code        string
	targetURL   string
	totalClicks int64
	lastClicked *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// ReconstructLink rebuilds a Link from persisted state.
func ReconstructLink(
	id int64,
	code string,
	targetURL string,
	totalClicks int64,
	lastClicked *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Link {
	return &Link{
		id:          id,
		code:        code,
		targetURL:   targetURL,
		totalClicks: totalClicks,
		lastClicked: lastClicked,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the persistence-assigned identifier.
func (l *Link) ID() int64 {
	return l.id
}

// Code returns the short code.
func (l *Link) Code() string {
	return l.code
}

// TargetURL returns the URL the code redirects to.
func (l *Link) TargetURL() string {
	return l.targetURL
}

// TotalClicks returns the number of successful redirects.
func (l *Link) TotalClicks() int64 {
	return l.totalClicks
}

// LastClicked returns the time of the last redirect, or nil if never clicked.
func (l *Link) LastClicked() *time.Time {
	return l.lastClicked
}

// CreatedAt returns when the link was created.
func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns when the link was last written.
func (l *Link) UpdatedAt() time.Time {
	return l.updatedAt
}

// WasClicked reports whether the link has been resolved at least once.
func (l *Link) WasClicked() bool {
	return l.lastClicked != nil
}
