// Package event holds the facts a link publishes once the write behind them
// has been stored.
package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	LinkCreatedName = "link.created"
	LinkClickedName = "link.clicked"
	LinkDeletedName = "link.deleted"
)

// Names lists every event a link can raise, in lifecycle order.
var Names = []string{LinkCreatedName, LinkClickedName, LinkDeletedName}

// Event is a past fact about one link. AggregateID is the link code.
type Event interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
	AggregateID() string
}

// Base is the envelope embedded by every link event.
type Base struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	LinkCode string    `json:"link_code"`
}

// NewBase stamps a fresh envelope for the link with the given code. Ids are
// UUIDv7 so they sort by creation time.
func NewBase(code string) Base {
	return Base{
		ID:       uuid.Must(uuid.NewV7()).String(),
		At:       time.Now().UTC(),
		LinkCode: code,
	}
}

func (b Base) EventID() string       { return b.ID }
func (b Base) OccurredAt() time.Time { return b.At }
func (b Base) AggregateID() string   { return b.LinkCode }
