package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Price Money  `json:"price"`

	// Shift labels like "T2, 7h-12h" (weekday + time band)
	WorkSchedule []string `gorm:"serializer:json" json:"workSchedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
