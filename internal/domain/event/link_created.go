package event

// Compile-time interface check
var _ Event = LinkCreated{}

// LinkCreated is raised after a link is stored.
type LinkCreated struct {
	Base
	Code      string `json:"code"`
	TargetURL string `json:"target_url"`
	Generated bool   `json:"generated"`
}

// NewLinkCreated creates a new LinkCreated event.
func NewLinkCreated(code, targetURL string, generated bool) LinkCreated {
	return LinkCreated{
		Base:      NewBase(code),
		Code:      code,
		TargetURL: targetURL,
		Generated: generated,
	}
}

// EventName returns the event name.
func (e LinkCreated) EventName() string {
	return LinkCreatedName
}
