package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateContactInput struct {
	UserID uint

	Name    string
	Phone   *string
	Email   *string
	Address *string
	Note    *string
	Level   *string

	Subjects     []string
	Tags         []string
	Appointments []string
}

type CreateContactOutput struct {
	Contact *domain.Contact
	// Warning is ClashWarning when the new appointments collide with
	// another contact's; the contact is still created.
	Warning string
}

// ======================================================
// USE CASE
// ======================================================

type CreateContact struct {
	deps Deps
}

func NewCreateContact(deps Deps) *CreateContact {
	return &CreateContact{deps: deps.withDefaults()}
}

func (uc *CreateContact) Execute(
	ctx context.Context,
	in CreateContactInput,
) (*CreateContactOutput, error) {

	slots, err := parseAppointments(in.Appointments)
	if err != nil {
		return nil, err
	}

	level, err := parseLevel(in.Level)
	if err != nil {
		return nil, err
	}

	subjects, err := domain.ParseSubjects(in.Subjects)
	if err != nil {
		return nil, err
	}

	c, err := domain.New(domain.Params{
		Name:         in.Name,
		Phone:        optionalText(in.Phone),
		Email:        optionalText(in.Email),
		Address:      optionalText(in.Address),
		Note:         optionalText(in.Note),
		Level:        level,
		Subjects:     subjects,
		Tags:         in.Tags,
		Appointments: slots,
	})
	if err != nil {
		return nil, err
	}

	out := &CreateContactOutput{Contact: c}
	var clash bool
	err = uc.deps.Repo.Atomic(ctx, in.UserID, func(tx domain.Repository) error {
		// ID 0 is never assigned, so every stored appointment counts.
		others, err := tx.ListOtherAppointments(ctx, in.UserID, 0)
		if err != nil {
			return err
		}
		clash = domain.CheckClash(c.Appointments(), others) != nil

		return tx.CreateContact(ctx, in.UserID, c)
	})
	if err != nil {
		return nil, err
	}
	if clash {
		out.Warning = ClashWarning
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionContactCreated,
		Entity:   audit.EntityContact,
		EntityID: entityID(c.ID),
	})
	if clash {
		uc.deps.Log.Info("contact created with clashing appointments", "user_id", in.UserID, "contact_id", c.ID)
		uc.deps.record(audit.Event{
			UserID:   in.UserID,
			Action:   audit.ActionAppointmentClash,
			Entity:   audit.EntityContact,
			EntityID: entityID(c.ID),
		})
	}

	return out, nil
}
