package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/domain/appointment"
)

type Repository interface {
	// Atomic runs fn inside one transaction holding the owner's lock, so
	// writes to one user's contacts are serialised. fn must only use tx.
	Atomic(
		ctx context.Context,
		userID uint,
		fn func(tx Repository) error,
	) error

	// -------- Contacts --------
	ListContacts(
		ctx context.Context,
		userID uint,
		query string,
	) ([]*Contact, error)

	GetContact(
		ctx context.Context,
		userID uint,
		contactID uint,
	) (*Contact, error)

	CreateContact(
		ctx context.Context,
		userID uint,
		c *Contact,
	) error

	// UpdateContact saves every field except the avatar key and replaces
	// the stored appointments with c's current set.
	UpdateContact(
		ctx context.Context,
		userID uint,
		c *Contact,
	) error

	DeleteContact(
		ctx context.Context,
		userID uint,
		contactID uint,
	) error

	SetAvatarKey(
		ctx context.Context,
		userID uint,
		contactID uint,
		key string,
	) error

	// -------- Appointments --------
	// ListOtherAppointments returns the appointments of every contact of
	// userID except contactID.
	ListOtherAppointments(
		ctx context.Context,
		userID uint,
		contactID uint,
	) ([]appointment.Appointment, error)
}
