package validators

import "testing"

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-31", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-1-5", false},
		{"31/01/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.in); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"09:60", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidTime(tt.in); got != tt.want {
			t.Errorf("IsValidTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{0, true},
		{0.5, true},
		{3, true},
		{4.5, true},
		{5, true},
		{5.5, false},
		{-0.5, false},
		{3.2, false},
	}

	for _, tt := range tests {
		if got := IsValidRating(tt.in); got != tt.want {
			t.Errorf("IsValidRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
