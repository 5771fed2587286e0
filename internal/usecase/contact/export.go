package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
)

const contentTypeJSON = "application/json"

// ExportedContact is the archived form of one contact.
type ExportedContact struct {
	ID           uint                          `json:"id"`
	Name         string                        `json:"name"`
	Phone        domain.Optional[string]       `json:"phone"`
	Email        domain.Optional[string]       `json:"email"`
	Address      domain.Optional[string]       `json:"address"`
	Note         domain.Optional[string]       `json:"note"`
	Level        domain.Optional[domain.Level] `json:"level"`
	Subjects     []domain.Subject              `json:"subjects"`
	Tags         []string                      `json:"tags"`
	Appointments []string                      `json:"appointments"`
}

type ExportSnapshot struct {
	UserID     uint              `json:"user_id"`
	ExportedAt time.Time         `json:"exported_at"`
	Contacts   []ExportedContact `json:"contacts"`
}

type ExportContacts struct {
	deps    Deps
	storage ObjectStorage
	now     func() time.Time
}

func NewExportContacts(deps Deps, storage ObjectStorage) *ExportContacts {
	return &ExportContacts{
		deps:    deps.withDefaults(),
		storage: storage,
		now:     time.Now,
	}
}

// Execute writes a JSON snapshot of every contact and returns its object key.
func (uc *ExportContacts) Execute(ctx context.Context, userID uint) (string, error) {
	contacts, err := uc.deps.Repo.ListContacts(ctx, userID, "")
	if err != nil {
		return "", err
	}

	snap := ExportSnapshot{
		UserID:     userID,
		ExportedAt: uc.now().UTC(),
		Contacts:   make([]ExportedContact, 0, len(contacts)),
	}
	for _, c := range contacts {
		snap.Contacts = append(snap.Contacts, exportOf(c))
	}

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}

	key := fmt.Sprintf("exports/%d/%s.json", userID, uuid.NewString())
	if err := uc.storage.Put(ctx, key, body, contentTypeJSON); err != nil {
		return "", err
	}

	uc.deps.record(audit.Event{
		UserID:   userID,
		Action:   audit.ActionContactsExported,
		Entity:   audit.EntityContact,
		Metadata: map[string]any{"key": key, "count": len(contacts)},
	})
	return key, nil
}

func exportOf(c *domain.Contact) ExportedContact {
	slots := c.Appointments()
	apps := make([]string, len(slots))
	for i, a := range slots {
		apps[i] = a.String()
	}
	return ExportedContact{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		Note:         c.Note,
		Level:        c.Level,
		Subjects:     c.Subjects,
		Tags:         c.Tags,
		Appointments: apps,
	}
}
