package event

// Compile-time interface check
var _ Event = LinkDeleted{}

// LinkDeleted is raised after a link is removed.
type LinkDeleted struct {
	Base
	Code        string `json:"code"`
	TotalClicks int64  `json:"total_clicks"`
}

// NewLinkDeleted creates a new LinkDeleted event.
func NewLinkDeleted(code string, totalClicks int64) LinkDeleted {
	return LinkDeleted{
		Base:        NewBase(code),
		Code:        code,
		TotalClicks: totalClicks,
	}
}

// EventName returns the event name.
func (e LinkDeleted) EventName() string {
	return LinkDeletedName
}
