package validators

import (
	"math"
	"time"
)

// IsValidDate checks the wire date format "2006-01-02".
func IsValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidTime checks the wire time format "15:04".
func IsValidTime(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// IsValidRating accepts 0..5 in half steps (0, 0.5, ..., 5).
func IsValidRating(r float64) bool {
	if r < 0 || r > 5 {
		return false
	}
	doubled := r * 2
	return doubled == math.Trunc(doubled)
}
