package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
)

type DeleteContact struct {
	deps Deps
}

func NewDeleteContact(deps Deps) *DeleteContact {
	return &DeleteContact{deps: deps.withDefaults()}
}

func (uc *DeleteContact) Execute(ctx context.Context, userID, contactID uint) error {
	if err := uc.deps.Repo.DeleteContact(ctx, userID, contactID); err != nil {
		return err
	}

	uc.deps.afterWrite(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionContactDeleted,
		Entity:   audit.EntityContact,
		EntityID: entityID(contactID),
	})
	return nil
}
