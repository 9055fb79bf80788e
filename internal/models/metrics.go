package models

type Metrics struct {
	Window       string `json:"window"`
	Clicks       int    `json:"clicks"`
	Saves        int    `json:"saves"`
	RSVPs        int    `json:"rsvps"`
	Interactions int    `json:"interactions"`
}

type IngestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Results struct {
		SampleEvents  int `json:"sample_events"`
		ScrapedEvents int `json:"scraped_events"`
		TotalEvents   int `json:"total_events"`
	} `json:"results"`
}
