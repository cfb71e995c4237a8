package request

import (
	"errors"
	"fmt"
	"strings"

	"wondershop/internal/domain/entities"
)

var (
	ErrInvalidEventType = errors.New("invalid event type")
	ErrMissingPhotoRef  = errors.New("photo event without photo_ref")
)

// EventRequest is one inbound chat event as forwarded by the messaging
// transport. Action is the raw button token for "button" events.
type EventRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Username string `json:"username"`
	Type     string `json:"type" binding:"required"`
	Text     string `json:"text"`
	PhotoRef string `json:"photo_ref"`
	Action   string `json:"action"`
}

func (r EventRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

// ToEvent decodes the payload. Button tokens are parsed here so the dialogue
// only ever sees typed actions.
func (r EventRequest) ToEvent(privileged bool) (entities.Event, error) {
	ev := entities.Event{
		UserID:     r.ResolveUserID(),
		Username:   strings.TrimPrefix(strings.TrimSpace(r.Username), "@"),
		Privileged: privileged,
		Kind:       entities.EventKind(strings.ToLower(strings.TrimSpace(r.Type))),
	}

	switch ev.Kind {
	case entities.EventStart, entities.EventCancel:
	case entities.EventText:
		ev.Text = r.Text
	case entities.EventPhoto:
		ref := strings.TrimSpace(r.PhotoRef)
		if ref == "" {
			return entities.Event{}, ErrMissingPhotoRef
		}
		ev.PhotoRef = ref
	case entities.EventButton:
		action, err := entities.ParseAction(strings.TrimSpace(r.Action))
		if err != nil {
			return entities.Event{}, err
		}
		ev.Action = action
	default:
		return entities.Event{}, fmt.Errorf("%w: %q", ErrInvalidEventType, r.Type)
	}
	return ev, nil
}
