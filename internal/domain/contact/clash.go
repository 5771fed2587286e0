package contact

import (
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
)

// Aggregate is the permissive union of every contact's appointments.
// Identical slots owned by different contacts appear once.
func Aggregate(contacts []*Contact) *appointment.Collection {
	var all []appointment.Appointment
	for _, c := range contacts {
		all = append(all, c.Appointments()...)
	}
	return aggregateOf(all)
}

func aggregateOf(slots []appointment.Appointment) *appointment.Collection {
	agg := appointment.NewCollection(appointment.Permit)
	for _, a := range slots {
		if a.IsZero() || agg.Contains(a) {
			continue
		}
		// Permit only refuses duplicates and zero values, both skipped above.
		_ = agg.Add(a)
	}
	return agg
}

// HasClash reports whether appointments of the given contacts collide with
// each other, including identical slots held by two contacts.
func HasClash(contacts []*Contact) bool {
	var all []appointment.Appointment
	for _, c := range contacts {
		all = append(all, c.Appointments()...)
	}
	return appointment.HasOverlapping(all)
}

// CheckClash rejects candidate when any of its slots collides with others,
// the appointments held by every other contact. Clashes among others alone
// are not the candidate's concern.
func CheckClash(candidate, others []appointment.Appointment) error {
	view := aggregateOf(others)
	for _, a := range candidate {
		if view.Overlaps(a) {
			return appointment.ErrOverlapConflict
		}
	}
	return nil
}
