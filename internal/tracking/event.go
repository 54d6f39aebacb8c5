package tracking

// Event represents a single recorded page view.
//
// Timestamp is always set; every other field may be empty, and an empty
// string means "unknown" rather than an error. The empty string is the
// canonical unknown sentinel throughout the codebase; the stats layer maps
// it to null in API output.
type Event struct {
	ID        string `json:"id,omitempty"`
	Timestamp int64  `json:"ts"`
	ClientIP  string `json:"ip,omitempty"`
	Country   string `json:"country,omitempty"`
	Path      string `json:"path,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"ua,omitempty"`
}

// TopicPageView is the topic beacon events are published on.
const TopicPageView = "pageview.tracked"
