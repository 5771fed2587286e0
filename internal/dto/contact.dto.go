package dto

import (
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

type ContactDTO struct {
	ID           uint                            `json:"id"`
	Name         string                          `json:"name"`
	Phone        contact.Optional[string]        `json:"phone"`
	Email        contact.Optional[string]        `json:"email"`
	Address      contact.Optional[string]        `json:"address"`
	Note         contact.Optional[string]        `json:"note"`
	Level        contact.Optional[contact.Level] `json:"level"`
	Subjects     []contact.Subject               `json:"subjects"`
	Tags         []string                        `json:"tags"`
	AvatarKey    string                          `json:"avatar_key,omitempty"`
	Appointments []string                        `json:"appointments"`
}

func ContactFrom(c *contact.Contact) ContactDTO {
	slots := c.Appointments()
	apps := make([]string, len(slots))
	for i, a := range slots {
		apps[i] = a.String()
	}

	subjects := c.Subjects
	if subjects == nil {
		subjects = []contact.Subject{}
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}

	return ContactDTO{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Note:         c.Note,
		Level:        c.Level,
		Subjects:     subjects,
		Tags:         tags,
		AvatarKey:    c.AvatarKey,
		Appointments: apps,
	}
}

func ContactsFrom(cs []*contact.Contact) []ContactDTO {
	out := make([]ContactDTO, len(cs))
	for i, c := range cs {
		out[i] = ContactFrom(c)
	}
	return out
}
