package events

import "time"

// Progress events mirror what the collector is doing so a UI can show
// "analysing page N" style feedback while a live search runs.
type Type string

const (
	PageStarted  Type = "page_started"
	PageDone     Type = "page_done"
	FallbackUsed Type = "fallback_used"
)

type Event struct {
	Type    Type      `json:"type"`
	At      time.Time `json:"at"`
	Page    int       `json:"page,omitempty"`
	Offers  int       `json:"offers,omitempty"`
	Message string    `json:"message,omitempty"`
}

func Progress(typ Type, page, offers int, msg string) Event {
	return Event{
		Type:    typ,
		At:      time.Now().UTC(),
		Page:    page,
		Offers:  offers,
		Message: msg,
	}
}
