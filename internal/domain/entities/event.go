package entities

// EventKind identifies the decoded shape of an inbound chat event.
type EventKind string

const (
	EventStart  EventKind = "start"
	EventText   EventKind = "text"
	EventPhoto  EventKind = "photo"
	EventButton EventKind = "button"
	EventCancel EventKind = "cancel"
)

// Event is an inbound chat event already decoded by the transport.
//
// Privileged is computed by the caller from the operator roster; the dialogue
// trusts it as given.
type Event struct {
	UserID     string
	Username   string
	Privileged bool
	Kind       EventKind
	Text       string
	PhotoRef   string
	Action     Action
}

// BuyerID is the identity recorded on orders: the handle when the user has
// one, the raw id otherwise.
func (e Event) BuyerID() string {
	if e.Username != "" {
		return e.Username
	}
	return e.UserID
}
