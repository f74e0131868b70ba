package models

import "time"

// SharedItem is one entry of the share history log, newest first.
type SharedItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Platform string    `json:"platform"`
	SharedAt time.Time `json:"sharedAt"`
}
