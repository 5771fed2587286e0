package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
)

// EditContactInput is a partial update. A nil field keeps the stored value.
// For the optional text fields and Level, a blank string clears the value.
type EditContactInput struct {
	UserID    uint
	ContactID uint

	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Note    *string
	Level   *string

	Subjects     *[]string
	Tags         *[]string
	Appointments *[]string
}

// IsEmpty reports whether no field was provided.
func (in EditContactInput) IsEmpty() bool {
	return in.Name == nil && in.Phone == nil && in.Email == nil &&
		in.Address == nil && in.Note == nil && in.Level == nil &&
		in.Subjects == nil && in.Tags == nil && in.Appointments == nil
}

var ErrNothingToEdit = httperr.BusinessError{
	Code:    "nothing_to_edit",
	Message: "At least one field to edit must be provided",
}

type EditContact struct {
	deps Deps
}

func NewEditContact(deps Deps) *EditContact {
	return &EditContact{deps: deps.withDefaults()}
}

func (uc *EditContact) Execute(ctx context.Context, in EditContactInput) (*domain.Contact, error) {
	if in.IsEmpty() {
		return nil, ErrNothingToEdit
	}

	var edited *domain.Contact
	err := uc.deps.Repo.Atomic(ctx, in.UserID, func(tx domain.Repository) error {
		current, err := tx.GetContact(ctx, in.UserID, in.ContactID)
		if err != nil {
			return err
		}

		p, err := applyEdit(current.Params(), in)
		if err != nil {
			return err
		}

		next, err := domain.New(p)
		if err != nil {
			return err
		}

		// Field-only edits are checked too.
		others, err := tx.ListOtherAppointments(ctx, in.UserID, in.ContactID)
		if err != nil {
			return err
		}
		if err := domain.CheckClash(next.Appointments(), others); err != nil {
			return err
		}

		if err := tx.UpdateContact(ctx, in.UserID, next); err != nil {
			return err
		}
		edited = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionContactUpdated,
		Entity:   audit.EntityContact,
		EntityID: entityID(edited.ID),
	})

	return edited, nil
}

func applyEdit(p domain.Params, in EditContactInput) (domain.Params, error) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Phone != nil {
		p.Phone = optionalText(in.Phone)
	}
	if in.Email != nil {
		p.Email = optionalText(in.Email)
	}
	if in.Address != nil {
		p.Address = optionalText(in.Address)
	}
	if in.Note != nil {
		p.Note = optionalText(in.Note)
	}
	if in.Level != nil {
		level, err := parseLevel(in.Level)
		if err != nil {
			return p, err
		}
		p.Level = level
	}
	if in.Subjects != nil {
		subjects, err := domain.ParseSubjects(*in.Subjects)
		if err != nil {
			return p, err
		}
		p.Subjects = subjects
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.Appointments != nil {
		slots, err := parseAppointments(*in.Appointments)
		if err != nil {
			return p, err
		}
		p.Appointments = slots
	}
	return p, nil
}
