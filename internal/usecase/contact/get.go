package contact

import (
	"context"

	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

type GetContact struct {
	repo domain.Repository
}

func NewGetContact(repo domain.Repository) *GetContact {
	return &GetContact{repo: repo}
}

func (uc *GetContact) Execute(ctx context.Context, userID, contactID uint) (*domain.Contact, error) {
	return uc.repo.GetContact(ctx, userID, contactID)
}

type ListContacts struct {
	repo domain.Repository
}

func NewListContacts(repo domain.Repository) *ListContacts {
	return &ListContacts{repo: repo}
}

// Execute returns the user's contacts whose name, phone or email contains
// query. An empty query lists everyone.
func (uc *ListContacts) Execute(ctx context.Context, userID uint, query string) ([]*domain.Contact, error) {
	return uc.repo.ListContacts(ctx, userID, query)
}
