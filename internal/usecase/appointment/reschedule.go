package appointment

import (
	"context"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	"github.com/HuongNguyenDev/beautycare-admin/internal/validators"
)

type RescheduleAppointmentInput struct {
	Date       *string
	Time       *string
	EmployeeID *uint
	ServiceID  *uint
}

// RescheduleAppointment edits date/time/assignment of an appointment
// that has not yet been completed or cancelled, re-running the same
// eligibility and slot checks as creation.
type RescheduleAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	policy domain.Policy
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	policy domain.Policy,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		audit:  audit,
		policy: policy,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	current := domain.Status(ap.Status)
	if current != domain.StatusPending && current != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if in.Date != nil {
		if !validators.IsValidDate(*in.Date) {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		ap.Date = *in.Date
	}
	if in.Time != nil {
		if !validators.IsValidTime(*in.Time) {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		ap.Time = *in.Time
	}
	if in.EmployeeID != nil {
		ap.EmployeeID = *in.EmployeeID
	}
	if in.ServiceID != nil {
		ap.ServiceID = *in.ServiceID
	}

	svc, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	emp, err := uc.repo.GetEmployee(ctx, ap.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness("employee_not_found")
	}

	if !domain.IsEligible(emp, svc, uc.policy) {
		return nil, httperr.ErrBusiness("employee_not_eligible")
	}

	if err := uc.repo.AssertNoSlotConflict(
		ctx,
		ap.EmployeeID,
		ap.Date,
		ap.Time,
		ap.ID,
	); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
