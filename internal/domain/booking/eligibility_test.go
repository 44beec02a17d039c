package booking

import (
	"testing"

	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

func TestEligibleEmployees(t *testing.T) {
	svc := &models.Service{ID: 1, Name: "Chăm sóc da", WorkSchedule: []string{"Ca sáng"}}

	employees := []models.Employee{
		// performs the service and works the same shift
		{ID: 10, Name: "Lan", ServiceIDs: []uint{1}, WorkSchedule: []string{"Ca sáng", "Ca chiều"}},
		// performs the service but works a different shift
		{ID: 11, Name: "Minh", ServiceIDs: []uint{1, 2}, WorkSchedule: []string{"Ca tối"}},
		// does not perform the service at all
		{ID: 12, Name: "Hoa", ServiceIDs: []uint{2}, WorkSchedule: []string{"Ca sáng"}},
	}

	tests := []struct {
		name    string
		policy  Policy
		wantIDs []uint
	}{
		{"by service keeps every performer", PolicyByService, []uint{10, 11}},
		{"by schedule also needs a shared shift", PolicyBySchedule, []uint{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EligibleEmployees(employees, svc, tt.policy)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d employees, want %d", len(got), len(tt.wantIDs))
			}
			for i, e := range got {
				if e.ID != tt.wantIDs[i] {
					t.Errorf("employee[%d].ID = %d, want %d", i, e.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestIsEligibleEmptySchedules(t *testing.T) {
	svc := &models.Service{ID: 1, WorkSchedule: nil}
	e := &models.Employee{ID: 10, ServiceIDs: []uint{1}, WorkSchedule: nil}

	if !IsEligible(e, svc, PolicyByService) {
		t.Error("service policy must ignore schedules")
	}
	if IsEligible(e, svc, PolicyBySchedule) {
		t.Error("schedule policy with no shifts on either side must reject")
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"schedule", PolicyBySchedule},
		{"service", PolicyByService},
		{"", PolicyByService},
		{"nonsense", PolicyByService},
	}
	for _, tt := range tests {
		if got := ParsePolicy(tt.in); got != tt.want {
			t.Errorf("ParsePolicy(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
