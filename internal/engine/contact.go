package engine

import (
	"time"

	"github.com/tartampluch/go-hijri"
)

// AnniversaryEntry is the contact list view of one vCard birthday.
type AnniversaryEntry struct {
	// UID is the name-based UUID shared by the contact's events.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the Gregorian BDAY as parsed.
	DateOfBirth time.Time

	// BirthHijri is DateOfBirth in the Umm al-Qura calendar.
	BirthHijri hijri.Date

	// NextOccurrence is the next Hijri anniversary, today included. It is the
	// zero Date when the next anniversary falls outside the supported range.
	NextOccurrence hijri.Date

	// AgeNext is the age in Hijri years reached at NextOccurrence.
	AgeNext int
}
