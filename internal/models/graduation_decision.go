package models

import "time"

type GraduationDecision struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DecisionNumber string `gorm:"size:50;not null" json:"decisionNumber"`
	IssuedDate     string `gorm:"size:10" json:"issuedDate"`
	Description    string `gorm:"size:500" json:"description"`

	DiplomaBookID uint `gorm:"index" json:"diplomaBookId"`

	// Bumped once per public lookup of a diploma under this decision
	SearchCount int `json:"searchCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
