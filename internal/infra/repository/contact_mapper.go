package repository

import (
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
	"github.com/BruksfildServices01/tutor-contacts/internal/models"
)

func fromDomain(userID uint, c *contact.Contact) *models.Contact {
	subjects := make([]string, len(c.Subjects))
	for i, s := range c.Subjects {
		subjects[i] = string(s)
	}

	var level *string
	if l, ok := c.Level.Get(); ok {
		s := string(l)
		level = &s
	}

	slots := c.Appointments()
	apps := make([]models.ContactAppointment, len(slots))
	for i, a := range slots {
		apps[i] = models.ContactAppointment{
			ContactID: c.ID,
			UserID:    userID,
			Value:     a.String(),
			Day:       int(a.Day()),
			StartMin:  int(a.Start()),
			EndMin:    int(a.End()),
			Position:  i,
		}
	}

	return &models.Contact{
		ID:           c.ID,
		UserID:       userID,
		Name:         c.Name,
		Phone:        c.Phone.Ptr(),
		Email:        c.Email.Ptr(),
		Address:      c.Address.Ptr(),
		Note:         c.Note.Ptr(),
		Level:        level,
		Subjects:     subjects,
		Tags:         append([]string(nil), c.Tags...),
		AvatarKey:    c.AvatarKey,
		Appointments: apps,
	}
}

func toDomain(row *models.Contact) (*contact.Contact, error) {
	p := contact.Params{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     contact.FromPtr(row.Phone),
		Email:     contact.FromPtr(row.Email),
		Address:   contact.FromPtr(row.Address),
		Note:      contact.FromPtr(row.Note),
		Tags:      row.Tags,
		AvatarKey: row.AvatarKey,
	}

	if row.Level != nil {
		l, err := contact.ParseLevel(*row.Level)
		if err != nil {
			return nil, err
		}
		p.Level = contact.Some(l)
	}

	subjects, err := contact.ParseSubjects(row.Subjects)
	if err != nil {
		return nil, err
	}
	p.Subjects = subjects

	p.Appointments = make([]appointment.Appointment, 0, len(row.Appointments))
	for _, ra := range row.Appointments {
		a, err := appointment.Parse(ra.Value)
		if err != nil {
			return nil, err
		}
		p.Appointments = append(p.Appointments, a)
	}

	return contact.New(p)
}
