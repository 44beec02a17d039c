package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Stored for reporting; booking does not cap a day at this number.
	MaxCustomersPerDay int `json:"maxCustomersPerDay"`

	WorkSchedule []string `gorm:"serializer:json" json:"workSchedule"`

	// IDs of services this employee can perform
	ServiceIDs []uint `gorm:"serializer:json" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Employee) PerformsService(serviceID uint) bool {
	for _, id := range e.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
