package models

import "time"

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
	Host        string     `json:"host,omitempty"`
	PriceCents  *int       `json:"price_cents,omitempty"`
	URL         string     `json:"url,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Why         string     `json:"why,omitempty"`
	Popularity  float64    `json:"popularity,omitempty"`
	Saved       bool       `json:"saved,omitempty"`
}

type Pagination struct {
	CurrentPage   int  `json:"current_page"`
	TotalPages    int  `json:"total_pages"`
	TotalEvents   int  `json:"total_events"`
	EventsPerPage int  `json:"events_per_page"`
	HasNext       bool `json:"has_next"`
	HasPrevious   bool `json:"has_previous"`
}

type FeedPage struct {
	Events     []Event     `json:"events"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
