package models

type User struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name,omitempty"`
	Interests   []string `json:"interests"`
}

// Feedback mirrors the backend wire shape. The client only ever sets
// Clicked, the other signals exist so the model stays in sync with the API.
type Feedback struct {
	UserID       string `json:"user_id"`
	EventID      string `json:"event_id"`
	Clicked      bool   `json:"clicked,omitempty"`
	Saved        bool   `json:"saved,omitempty"`
	RSVP         bool   `json:"rsvp,omitempty"`
	DwellSeconds int    `json:"dwell_seconds,omitempty"`
}
