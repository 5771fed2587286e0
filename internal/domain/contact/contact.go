package contact

import (
	"slices"
	"strings"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
)

// ===============================
// Errors
// ===============================

var (
	ErrNotFound = httperr.BusinessError{
		Code:    "contact_not_found",
		Message: "The contact could not be found",
	}
	ErrInvalidName = httperr.BusinessError{
		Code:    "invalid_name",
		Message: "Names should not be blank",
	}
	ErrInvalidLevel = httperr.BusinessError{
		Code:    "invalid_level",
		Message: "Levels should only be P1, P2, P3, P4, P5 or P6",
	}
	ErrInvalidSubject = httperr.BusinessError{
		Code:    "invalid_subject",
		Message: "Subjects should only be ENGLISH, MATH, SCIENCE or MT",
	}
)

// ===============================
// Entity
// ===============================

// Contact is one student record. Its appointments never overlap each other.
type Contact struct {
	ID        uint
	Name      string
	Phone     Optional[string]
	Email     Optional[string]
	Address   Optional[string]
	Note      Optional[string]
	Level     Optional[Level]
	Subjects  []Subject
	Tags      []string
	AvatarKey string

	appointments *appointment.Collection
}

// Params carries the validated-by-caller fields plus raw appointments.
type Params struct {
	ID           uint
	Name         string
	Phone        Optional[string]
	Email        Optional[string]
	Address      Optional[string]
	Note         Optional[string]
	Level        Optional[Level]
	Subjects     []Subject
	Tags         []string
	AvatarKey    string
	Appointments []appointment.Appointment
}

func New(p Params) (*Contact, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	slots, err := appointment.NewDisjoint(p.Appointments...)
	if err != nil {
		return nil, err
	}

	return &Contact{
		ID:           p.ID,
		Name:         name,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		Note:         p.Note,
		Level:        p.Level,
		Subjects:     slices.Clone(p.Subjects),
		Tags:         normalizeTags(p.Tags),
		AvatarKey:    p.AvatarKey,
		appointments: slots,
	}, nil
}

// Params returns the contact's current fields, suitable for New.
func (c *Contact) Params() Params {
	return Params{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Note:         c.Note,
		Level:        c.Level,
		Subjects:     slices.Clone(c.Subjects),
		Tags:         slices.Clone(c.Tags),
		AvatarKey:    c.AvatarKey,
		Appointments: c.Appointments(),
	}
}

// Appointments returns a snapshot in insertion order.
func (c *Contact) Appointments() []appointment.Appointment {
	if c.appointments == nil {
		return nil
	}
	return c.appointments.Slice()
}

// AppointmentCollection returns a copy the caller may mutate freely.
func (c *Contact) AppointmentCollection() *appointment.Collection {
	if c.appointments == nil {
		return appointment.NewCollection(appointment.Reject)
	}
	return c.appointments.Clone()
}

func (c *Contact) HasAppointments() bool {
	return c.appointments != nil && !c.appointments.IsEmpty()
}

func (c *Contact) HasAppointment(a appointment.Appointment) bool {
	return c.appointments != nil && c.appointments.Contains(a)
}

// ReplaceAppointments swaps the whole appointment set. On error the contact
// keeps its previous appointments.
func (c *Contact) ReplaceAppointments(slots []appointment.Appointment) error {
	next, err := appointment.NewDisjoint(slots...)
	if err != nil {
		return err
	}
	c.appointments = next
	return nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
