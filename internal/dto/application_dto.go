package dto

import "time"

type ApplicationCreateDTO struct {
	Company   string     `json:"company" binding:"required"`
	Position  string     `json:"position" binding:"required"`
	Status    string     `json:"status" binding:"omitempty,oneof=applied interview offer rejected"`
	AppliedAt *time.Time `json:"applied_at"`
	URL       string     `json:"url" binding:"omitempty,url"`
	Notes     string     `json:"notes"`
}

// ApplicationUpdateDTO carries a partial update; nil fields are left untouched.
type ApplicationUpdateDTO struct {
	Company   *string    `json:"company"`
	Position  *string    `json:"position"`
	Status    *string    `json:"status" binding:"omitempty,oneof=applied interview offer rejected"`
	AppliedAt *time.Time `json:"applied_at"`
	URL       *string    `json:"url" binding:"omitempty,url"`
	Notes     *string    `json:"notes"`
}

type ApplicationDTO struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
	URL       string    `json:"url,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
