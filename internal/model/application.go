package model

import (
	"time"

	"gorm.io/gorm"
)

// Application status values.
const (
	ApplicationApplied   = "applied"
	ApplicationInterview = "interview"
	ApplicationOffer     = "offer"
	ApplicationRejected  = "rejected"
)

// Application is one tracked internship application.
type Application struct {
	ID        string         `gorm:"primarykey;size:36" json:"id"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	Company   string         `gorm:"not null" json:"company"`
	Position  string         `gorm:"not null" json:"position"`
	Status    string         `gorm:"not null;default:applied" json:"status"`
	AppliedAt time.Time      `gorm:"not null" json:"applied_at"`
	URL       string         `json:"url,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
