package booking

import (
	"testing"

	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		action  func(*models.Appointment) error
		wantTo  Status
		wantErr bool
	}{
		{"confirm pending", StatusPending, Confirm, StatusConfirmed, false},
		{"confirm confirmed", StatusConfirmed, Confirm, StatusConfirmed, true},
		{"confirm completed", StatusCompleted, Confirm, StatusCompleted, true},
		{"confirm cancelled", StatusCancelled, Confirm, StatusCancelled, true},
		{"complete confirmed", StatusConfirmed, Complete, StatusCompleted, false},
		{"complete pending", StatusPending, Complete, StatusPending, true},
		{"complete completed", StatusCompleted, Complete, StatusCompleted, true},
		{"cancel pending", StatusPending, Cancel, StatusCancelled, false},
		{"cancel confirmed", StatusConfirmed, Cancel, StatusCancelled, false},
		{"cancel completed", StatusCompleted, Cancel, StatusCompleted, true},
		{"cancel cancelled", StatusCancelled, Cancel, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := &models.Appointment{Status: string(tt.from)}
			err := tt.action(ap)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				code, ok := httperr.BusinessCode(err)
				if !ok || code != "invalid_state" {
					t.Errorf("error code = %q, want invalid_state", code)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if Status(ap.Status) != tt.wantTo {
				t.Errorf("status after action = %s, want %s", ap.Status, tt.wantTo)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "done", "Pending", "canceled"} {
		if IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = true, want false", s)
		}
	}
}
