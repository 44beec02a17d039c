package models

import "time"

type Diploma struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Position inside the book, assigned from the book counter at
	// creation time. Never set by the client.
	EntryNumber int `gorm:"index" json:"entryNumber"`

	DiplomaNumber string `gorm:"size:50;uniqueIndex" json:"diplomaNumber"`

	StudentName    string  `gorm:"size:100;not null" json:"studentName"`
	StudentID      string  `gorm:"size:20;index" json:"studentId"`
	Major          string  `gorm:"size:100" json:"major"`
	TrainingType   string  `gorm:"size:50" json:"trainingType,omitempty"`
	BirthDate      string  `gorm:"size:10" json:"birthDate,omitempty"`
	Birthplace     string  `gorm:"size:100" json:"birthplace,omitempty"`
	Ethnicity      string  `gorm:"size:50" json:"ethnicity,omitempty"`
	GPA            float64 `json:"gpa,omitempty"`
	Ranking        string  `gorm:"size:30" json:"ranking,omitempty"`
	GraduationDate string  `gorm:"size:10" json:"graduationDate"`

	DiplomaBookID uint  `gorm:"index" json:"diplomaBookId"`
	DecisionID    *uint `gorm:"index" json:"decisionId,omitempty"`

	SearchCount int `json:"searchCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
