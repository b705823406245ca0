package dto

import "time"

// EmailDTO is one interview-related message surfaced from the connected inbox.
type EmailDTO struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Preview string    `json:"preview"`
	Date    time.Time `json:"date"`
}
