package appointment

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Date       string
	Time       string
	EmployeeID uint
	ServiceID  uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy domain.Policy
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	policy domain.Policy,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		policy: policy,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !validators.IsValidDate(in.Date) || !validators.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	emp, err := uc.repo.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	if !domain.IsEligible(emp, svc, uc.policy) {
		return nil, httperr.ErrBusiness("employee_not_eligible")
	}

	// the old console dropped this check at some point; the slot is
	// enforced here so two bookings can't share (date, time, employee)
	if err := uc.repo.AssertNoSlotConflict(
		ctx,
		in.EmployeeID,
		in.Date,
		in.Time,
		0,
	); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Date:       in.Date,
		Time:       in.Time,
		EmployeeID: in.EmployeeID,
		ServiceID:  in.ServiceID,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
