package appointment

import (
	"context"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/dto"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

type ListAppointmentsWithDetails struct {
	repo domain.Repository
}

func NewListAppointmentsWithDetails(
	repo domain.Repository,
) *ListAppointmentsWithDetails {
	return &ListAppointmentsWithDetails{
		repo: repo,
	}
}

// Execute joins appointments with their service and employee names.
// Optional filters: status, date ("2006-01-02"), employeeID. Orphaned
// references are kept, with the display fields left empty.
func (uc *ListAppointmentsWithDetails) Execute(
	ctx context.Context,
	status string,
	date string,
	employeeID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	serviceByID := make(map[uint]*models.Service, len(services))
	for i := range services {
		serviceByID[services[i].ID] = &services[i]
	}
	employeeByID := make(map[uint]*models.Employee, len(employees))
	for i := range employees {
		employeeByID[employees[i].ID] = &employees[i]
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		if status != "" && ap.Status != status {
			continue
		}
		if date != "" && ap.Date != date {
			continue
		}
		if employeeID > 0 && ap.EmployeeID != employeeID {
			continue
		}

		row := dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.Date,
			Time:       ap.Time,
			Status:     ap.Status,
			EmployeeID: ap.EmployeeID,
			ServiceID:  ap.ServiceID,
		}

		if svc, ok := serviceByID[ap.ServiceID]; ok {
			row.ServiceName = svc.Name
			row.Price = float64(svc.Price)
		}
		if emp, ok := employeeByID[ap.EmployeeID]; ok {
			row.EmployeeName = emp.Name
		}

		out = append(out, row)
	}

	return out, nil
}
