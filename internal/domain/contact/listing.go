package contact

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
)

const (
	listingHeader = "Appointments:"
	listingEmpty  = "There are no appointments to show!"
)

// ListingEntry is one appointment tagged with its owner's name.
type ListingEntry struct {
	ContactID   uint                    `json:"contact_id"`
	ContactName string                  `json:"contact_name"`
	Appointment appointment.Appointment `json:"appointment"`
}

// String renders "<ContactName>: <HH:MM-HH:MM DAY>".
func (e ListingEntry) String() string {
	return e.ContactName + ": " + e.Appointment.String()
}

// ListAppointments collects the appointments of contacts that match filter,
// ordered by day then start time. Ties keep the contacts' order.
func ListAppointments(contacts []*Contact, filter appointment.DayFilter) []ListingEntry {
	var out []ListingEntry
	for _, c := range contacts {
		if !c.HasAppointments() {
			continue
		}
		for a := range c.appointments.All() {
			if !filter.Match(a) {
				continue
			}
			out = append(out, ListingEntry{
				ContactID:   c.ID,
				ContactName: c.Name,
				Appointment: a,
			})
		}
	}

	slices.SortStableFunc(out, func(x, y ListingEntry) int {
		return x.Appointment.Compare(y.Appointment)
	})
	return out
}

// Lines renders each entry.
func Lines(entries []ListingEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.String()
	}
	return out
}

// FormatListing renders the text block shown to the user.
func FormatListing(lines []string) string {
	var sb strings.Builder
	sb.WriteString(listingHeader)
	sb.WriteString("\n")
	if len(lines) == 0 {
		sb.WriteString(listingEmpty)
		return sb.String()
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}
