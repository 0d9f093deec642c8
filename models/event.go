package models

import "time"

// EventType names a notification-sink signal.
type EventType string

const (
	EventItemAdded      EventType = "item_added"
	EventItemRemoved    EventType = "item_removed"
	EventQuantitySet    EventType = "quantity_set"
	EventWishlistToggle EventType = "wishlist_toggled"
	EventFilterApplied  EventType = "filter_applied"
	EventPointsGranted  EventType = "points_granted"
	EventPointsRedeemed EventType = "points_redeemed"
	EventPromoExpired   EventType = "promo_expired"
	EventPromoReset     EventType = "promo_reset"
)

// Event is a side-effect-free "something happened" record returned to
// the presentation layer, which may surface it as a toast. This core
// schedules no UI timers for it.
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	At        time.Time `json:"at"`
}

// NewEvent builds an event stamped with the current time.
func NewEvent(t EventType, sessionID, subject string) Event {
	return Event{Type: t, SessionID: sessionID, Subject: subject, At: time.Now()}
}
