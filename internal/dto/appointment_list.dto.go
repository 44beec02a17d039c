package dto

// AppointmentListDTO is an appointment enriched with display fields
// for the console table. Unknown references keep the zero values and
// render downstream as "Không xác định".
type AppointmentListDTO struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       string  `json:"status"`
	EmployeeID   uint    `json:"employeeId"`
	ServiceID    uint    `json:"serviceId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	ServiceName  string  `json:"serviceName,omitempty"`
	Price        float64 `json:"price,omitempty"`
}
