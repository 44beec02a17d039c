package appointment

import (
	"context"
	"sync"
	"testing"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

// ======================================================
// In-memory repository
// ======================================================

type fakeBookingRepo struct {
	mu           sync.Mutex
	services     map[uint]models.Service
	employees    map[uint]models.Employee
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		services:     map[uint]models.Service{},
		employees:    map[uint]models.Employee{},
		appointments: map[uint]models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeBookingRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &s, nil
}

func (r *fakeBookingRepo) GetEmployee(_ context.Context, id uint) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	return &e, nil
}

func (r *fakeBookingRepo) ListServices(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeBookingRepo) ListEmployees(_ context.Context) ([]models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeBookingRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap.ID = r.nextID
	r.nextID++
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeBookingRepo) AssertNoSlotConflict(
	_ context.Context,
	employeeID uint,
	date string,
	timeOfDay string,
	excludeID uint,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.ID == excludeID {
			continue
		}
		if domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}
		if ap.EmployeeID == employeeID && ap.Date == date && ap.Time == timeOfDay {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	return nil
}

func (r *fakeBookingRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (r *fakeBookingRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeBookingRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeBookingRepo)(nil)

func seededRepo() *fakeBookingRepo {
	repo := newFakeBookingRepo()
	repo.services[1] = models.Service{
		ID:           1,
		Name:         "Gội đầu dưỡng sinh",
		Price:        150000,
		WorkSchedule: []string{"Ca sáng"},
	}
	repo.employees[10] = models.Employee{
		ID:           10,
		Name:         "Lan",
		ServiceIDs:   []uint{1},
		WorkSchedule: []string{"Ca sáng"},
	}
	repo.employees[11] = models.Employee{
		ID:           11,
		Name:         "Minh",
		ServiceIDs:   []uint{2},
		WorkSchedule: []string{"Ca tối"},
	}
	return repo
}

// ======================================================
// Tests
// ======================================================

func TestCreateAppointment(t *testing.T) {
	tests := []struct {
		name     string
		in       CreateAppointmentInput
		wantCode string
	}{
		{
			name: "ok",
			in:   CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 10, ServiceID: 1},
		},
		{
			name:     "bad date",
			in:       CreateAppointmentInput{Date: "01/06/2024", Time: "09:00", EmployeeID: 10, ServiceID: 1},
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "bad time",
			in:       CreateAppointmentInput{Date: "2024-06-01", Time: "25:00", EmployeeID: 10, ServiceID: 1},
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "unknown service",
			in:       CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 10, ServiceID: 99},
			wantCode: "service_not_found",
		},
		{
			name:     "unknown employee",
			in:       CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 99, ServiceID: 1},
			wantCode: "employee_not_found",
		},
		{
			name:     "employee does not perform the service",
			in:       CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 11, ServiceID: 1},
			wantCode: "employee_not_eligible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateAppointment(seededRepo(), nil, domain.PolicyByService)
			ap, err := uc.Execute(context.Background(), tt.in)

			if tt.wantCode != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				code, _ := httperr.BusinessCode(err)
				if code != tt.wantCode {
					t.Errorf("error code = %q, want %q", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ap.ID == 0 {
				t.Error("created appointment has no ID")
			}
			if domain.Status(ap.Status) != domain.StatusPending {
				t.Errorf("new appointment status = %s, want pending", ap.Status)
			}
		})
	}
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	repo := seededRepo()
	uc := NewCreateAppointment(repo, nil, domain.PolicyByService)

	in := CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 10, ServiceID: 1}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	if code != "time_conflict" {
		t.Fatalf("second booking of the same slot: code = %q, want time_conflict", code)
	}

	// a different time on the same day is fine
	in.Time = "10:00"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}
}

func TestCreateAppointmentSchedulePolicy(t *testing.T) {
	repo := seededRepo()
	// performs the service but never works its shift
	repo.employees[12] = models.Employee{
		ID:           12,
		Name:         "Hoa",
		ServiceIDs:   []uint{1},
		WorkSchedule: []string{"Ca tối"},
	}

	uc := NewCreateAppointment(repo, nil, domain.PolicyBySchedule)

	in := CreateAppointmentInput{Date: "2024-06-01", Time: "09:00", EmployeeID: 12, ServiceID: 1}
	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	if code != "employee_not_eligible" {
		t.Errorf("code = %q, want employee_not_eligible", code)
	}

	in.EmployeeID = 10
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Errorf("shift-sharing employee rejected: %v", err)
	}
}

func TestRescheduleAppointment(t *testing.T) {
	repo := seededRepo()
	create := NewCreateAppointment(repo, nil, domain.PolicyByService)
	reschedule := NewRescheduleAppointment(repo, nil, domain.PolicyByService)

	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		Date: "2024-06-01", Time: "09:00", EmployeeID: 10, ServiceID: 1,
	})
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	newTime := "11:00"
	moved, err := reschedule.Execute(context.Background(), ap.ID, RescheduleAppointmentInput{Time: &newTime})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if moved.Time != "11:00" || moved.Date != "2024-06-01" {
		t.Errorf("moved to %s %s, want 2024-06-01 11:00", moved.Date, moved.Time)
	}

	// keeping the same slot must not conflict with itself
	if _, err := reschedule.Execute(context.Background(), ap.ID, RescheduleAppointmentInput{Time: &newTime}); err != nil {
		t.Errorf("no-op reschedule conflicted with itself: %v", err)
	}
}

func TestRescheduleTerminalStates(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		repo := seededRepo()
		repo.appointments[1] = models.Appointment{
			ID: 1, Date: "2024-06-01", Time: "09:00",
			EmployeeID: 10, ServiceID: 1, Status: string(status),
		}

		uc := NewRescheduleAppointment(repo, nil, domain.PolicyByService)
		newTime := "11:00"
		_, err := uc.Execute(context.Background(), 1, RescheduleAppointmentInput{Time: &newTime})

		code, _ := httperr.BusinessCode(err)
		if code != "invalid_state" {
			t.Errorf("reschedule of %s appointment: code = %q, want invalid_state", status, code)
		}
	}
}
