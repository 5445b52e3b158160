package event

// Compile-time interface check
var _ Event = LinkClicked{}

// LinkClicked is raised after a redirect has been recorded.
type LinkClicked struct {
	Base
	Code        string `json:"code"`
	TotalClicks int64  `json:"total_clicks"`
}

// NewLinkClicked creates a new LinkClicked event.
func NewLinkClicked(code string, totalClicks int64) LinkClicked {
	return LinkClicked{
		Base:        NewBase(code),
		Code:        code,
		TotalClicks: totalClicks,
	}
}

// EventName returns the event name.
func (e LinkClicked) EventName() string {
	return LinkClickedName
}
