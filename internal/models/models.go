package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Medication timestamps are stored as RFC 3339 UTC strings so that
// day-granularity checks can compare the date prefix directly.
type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// TakenRecord marks one dose of a medication as taken. Records are
// append-only; they are removed only when their medication is deleted.
type TakenRecord struct {
	MedicationID string `json:"medicationId"`
	TakenAt      string `json:"takenAt"`
	UserID       string `json:"userId"`
}

// Collections is the per-user state pair the storage backends load and save.
type Collections struct {
	Medications []Medication
	Taken       []TakenRecord
}

// Frequency labels offered by the app. Medication.Frequency always holds one
// of these; the CLI validates before the service sees the value.
var Frequencies = []string{
	"Once daily",
	"Twice daily",
	"Three times daily",
	"Four times daily",
	"As needed",
	"Weekly",
}

func ValidFrequency(s string) bool {
	for _, f := range Frequencies {
		if f == s {
			return true
		}
	}
	return false
}

// DatePrefix reports whether the RFC 3339 timestamp ts falls on the calendar
// day given as "YYYY-MM-DD".
func DatePrefix(ts, day string) bool {
	return len(ts) >= len(day) && ts[:len(day)] == day
}
