package booking

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListEmployees(
		ctx context.Context,
	) ([]models.Employee, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoSlotConflict fails with time_conflict when another
	// non-cancelled appointment already holds (date, time, employee).
	// excludeID skips the appointment being edited.
	AssertNoSlotConflict(
		ctx context.Context,
		employeeID uint,
		date string,
		timeOfDay string,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Reporting --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
