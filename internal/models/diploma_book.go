package models

import "time"

// DiplomaBook is the yearly ledger. CurrentEntryNumber is the next
// entry number to hand out; 0 means no diploma was issued yet and the
// first reservation yields 1.
type DiplomaBook struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Year               int `gorm:"uniqueIndex" json:"year"`
	CurrentEntryNumber int `json:"currentEntryNumber"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextEntryNumber normalizes the stored counter: books created before
// the counter existed read as 0 and must start at 1.
func (b *DiplomaBook) NextEntryNumber() int {
	if b.CurrentEntryNumber < 1 {
		return 1
	}
	return b.CurrentEntryNumber
}
