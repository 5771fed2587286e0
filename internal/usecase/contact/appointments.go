package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

// ======================================================
// SHARED
// ======================================================

// mutateAppointments loads the contact, applies fn to a copy of its
// collection, checks the touched slots against every other contact and
// stores the result, all in one transaction. The stored contact is
// untouched on any error.
func mutateAppointments(
	ctx context.Context,
	deps Deps,
	userID, contactID uint,
	touched []appointment.Appointment,
	fn func(*appointment.Collection) error,
) (*domain.Contact, error) {

	var out *domain.Contact
	err := deps.Repo.Atomic(ctx, userID, func(tx domain.Repository) error {
		c, err := tx.GetContact(ctx, userID, contactID)
		if err != nil {
			return err
		}

		col := c.AppointmentCollection()
		if err := fn(col); err != nil {
			return err
		}

		if len(touched) > 0 {
			others, err := tx.ListOtherAppointments(ctx, userID, contactID)
			if err != nil {
				return err
			}
			if err := domain.CheckClash(touched, others); err != nil {
				return err
			}
		}

		if err := c.ReplaceAppointments(col.Slice()); err != nil {
			return err
		}
		if err := tx.UpdateContact(ctx, userID, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ======================================================
// ADD
// ======================================================

type AddAppointment struct {
	deps Deps
}

func NewAddAppointment(deps Deps) *AddAppointment {
	return &AddAppointment{deps: deps.withDefaults()}
}

func (uc *AddAppointment) Execute(
	ctx context.Context,
	userID, contactID uint,
	raw string,
) (*domain.Contact, error) {

	a, err := appointment.Parse(raw)
	if err != nil {
		return nil, err
	}

	c, err := mutateAppointments(ctx, uc.deps, userID, contactID,
		[]appointment.Appointment{a},
		func(col *appointment.Collection) error { return col.Add(a) },
	)
	if err != nil {
		return nil, err
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentAdded,
		Entity:   audit.EntityAppointment,
		EntityID: entityID(contactID),
		Metadata: map[string]any{"appointment": a.String()},
	})
	return c, nil
}

// ======================================================
// REPLACE
// ======================================================

type ReplaceAppointment struct {
	deps Deps
}

func NewReplaceAppointment(deps Deps) *ReplaceAppointment {
	return &ReplaceAppointment{deps: deps.withDefaults()}
}

func (uc *ReplaceAppointment) Execute(
	ctx context.Context,
	userID, contactID uint,
	rawTarget, rawReplacement string,
) (*domain.Contact, error) {

	target, err := appointment.Parse(rawTarget)
	if err != nil {
		return nil, err
	}
	replacement, err := appointment.Parse(rawReplacement)
	if err != nil {
		return nil, err
	}

	touched := []appointment.Appointment{replacement}
	if target == replacement {
		touched = nil
	}

	c, err := mutateAppointments(ctx, uc.deps, userID, contactID, touched,
		func(col *appointment.Collection) error { return col.SetOne(target, replacement) },
	)
	if err != nil {
		return nil, err
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentReplaced,
		Entity:   audit.EntityAppointment,
		EntityID: entityID(contactID),
		Metadata: map[string]any{
			"target":      target.String(),
			"replacement": replacement.String(),
		},
	})
	return c, nil
}

// ======================================================
// REMOVE
// ======================================================

type RemoveAppointment struct {
	deps Deps
}

func NewRemoveAppointment(deps Deps) *RemoveAppointment {
	return &RemoveAppointment{deps: deps.withDefaults()}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	userID, contactID uint,
	raw string,
) (*domain.Contact, error) {

	a, err := appointment.Parse(raw)
	if err != nil {
		return nil, err
	}

	c, err := mutateAppointments(ctx, uc.deps, userID, contactID, nil,
		func(col *appointment.Collection) error { return col.Remove(a) },
	)
	if err != nil {
		return nil, err
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionAppointmentRemoved,
		Entity:   audit.EntityAppointment,
		EntityID: entityID(contactID),
		Metadata: map[string]any{"appointment": a.String()},
	})
	return c, nil
}
