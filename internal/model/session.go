package model

import (
	"time"

	"gorm.io/gorm"
)

// Session status values.
const (
	SessionInProgress = "in-progress"
	SessionCompleted  = "completed"
)

// InterviewSession is one practice run: a fixed ordered set of questions
// answered by one user, optionally targeted at a company.
type InterviewSession struct {
	ID            string         `gorm:"primarykey;size:36" json:"id"`
	UserID        string         `gorm:"not null;index" json:"user_id"`
	Company       string         `gorm:"not null;default:General" json:"company"`
	StartedAt     time.Time      `gorm:"not null" json:"started_at"`
	EndedAt       *time.Time     `json:"ended_at,omitempty"`
	Status        string         `gorm:"not null;default:in-progress" json:"status"` // "in-progress", "completed"
	QuestionCount int            `gorm:"not null" json:"question_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
