package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointmentId"`
	EmployeeID    uint `gorm:"index" json:"employeeId"`
	ServiceID     uint `json:"serviceId"`

	// 0..5 in half steps
	Rating  float64 `json:"rating"`
	Comment string  `gorm:"size:500" json:"comment"`

	// Filled in when the business answers the review
	Response string `gorm:"size:500" json:"response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
