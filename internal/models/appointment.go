package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Calendar day as "2006-01-02" and start time as "15:04", kept as
	// strings end to end (the wire format of the console).
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	EmployeeID uint `gorm:"index" json:"employeeId"`
	ServiceID  uint `gorm:"index" json:"serviceId"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
