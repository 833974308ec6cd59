package analytics

import "time"

// TopicLinkVisited carries one event per successful redirect.
const TopicLinkVisited = "link.visited"

// LinkVisitedEvent records a single redirect through a shortcut. Events are
// best-effort: losing one never fails the redirect that produced it.
type LinkVisitedEvent struct {
	ID        string    `json:"id"`
	Shortcut  string    `json:"shortcut"`
	Referrer  string    `json:"referrer"`
	UserAgent string    `json:"userAgent"`
	Country   string    `json:"country"`
	VisitedAt time.Time `json:"visitedAt"`
}
