package stats

import (
	"context"
	"testing"

	domain "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

// stubRepo serves fixed collections; the write-side methods are never
// reached by the report.
type stubRepo struct {
	appointments []models.Appointment
	services     []models.Service
	employees    []models.Employee
}

func (s *stubRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	return nil, httperr.ErrBusiness("service_not_found")
}

func (s *stubRepo) GetEmployee(_ context.Context, id uint) (*models.Employee, error) {
	return nil, httperr.ErrBusiness("employee_not_found")
}

func (s *stubRepo) ListServices(_ context.Context) ([]models.Service, error) {
	return s.services, nil
}

func (s *stubRepo) ListEmployees(_ context.Context) ([]models.Employee, error) {
	return s.employees, nil
}

func (s *stubRepo) CreateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (s *stubRepo) AssertNoSlotConflict(_ context.Context, _ uint, _, _ string, _ uint) error {
	return nil
}

func (s *stubRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (s *stubRepo) UpdateAppointment(_ context.Context, _ *models.Appointment) error {
	return nil
}

func (s *stubRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	return s.appointments, nil
}

var _ domain.Repository = (*stubRepo)(nil)

func TestRevenueReportRangeValidation(t *testing.T) {
	uc := NewRevenueReport(&stubRepo{}, nil)

	tests := []struct {
		name     string
		start    string
		end      string
		wantCode string
	}{
		{"no range", "", "", ""},
		{"start only", "2024-01-01", "", "invalid_request"},
		{"end only", "", "2024-01-31", "invalid_request"},
		{"bad date", "2024-13-01", "2024-01-31", "invalid_date_or_time"},
		{"inverted range", "2024-02-01", "2024-01-01", "invalid_request"},
		{"valid range", "2024-01-01", "2024-01-31", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.start, tt.end)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			code, _ := httperr.BusinessCode(err)
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestRevenueReportAggregates(t *testing.T) {
	repo := &stubRepo{
		appointments: []models.Appointment{
			{ID: 1, Date: "2024-01-02", Time: "09:00", EmployeeID: 10, ServiceID: 1, Status: "completed"},
			{ID: 2, Date: "2024-02-02", Time: "09:00", EmployeeID: 10, ServiceID: 1, Status: "completed"},
		},
		services:  []models.Service{{ID: 1, Name: "Cắt tóc", Price: 150000}},
		employees: []models.Employee{{ID: 10, Name: "Lan"}},
	}
	uc := NewRevenueReport(repo, nil)

	got, err := uc.Execute(context.Background(), "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got.ByService) != 1 || got.ByService[0].TotalRevenue != 150000 {
		t.Errorf("byService = %+v, want one entry of 150000", got.ByService)
	}
	if len(got.ByMonth) != 1 || got.ByMonth[0].Month != "01/2024" {
		t.Errorf("byMonth = %+v, want one entry for 01/2024", got.ByMonth)
	}
}
