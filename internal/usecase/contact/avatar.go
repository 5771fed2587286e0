package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
	domain "github.com/BruksfildServices01/tutor-contacts/internal/domain/contact"
	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
	"github.com/BruksfildServices01/tutor-contacts/internal/imaging"
)

var ErrInvalidImage = httperr.BusinessError{
	Code:    "invalid_image",
	Message: "The uploaded file is not a supported image",
}

type UploadAvatar struct {
	deps    Deps
	storage ObjectStorage
	size    int
}

func NewUploadAvatar(deps Deps, storage ObjectStorage, size int) *UploadAvatar {
	return &UploadAvatar{
		deps:    deps.withDefaults(),
		storage: storage,
		size:    size,
	}
}

// Execute stores raw as the contact's avatar and returns the new key. The
// previous avatar object is removed on a best-effort basis.
func (uc *UploadAvatar) Execute(
	ctx context.Context,
	userID, contactID uint,
	raw []byte,
) (string, error) {

	if _, err := uc.deps.Repo.GetContact(ctx, userID, contactID); err != nil {
		return "", err
	}

	img, err := imaging.Avatar(raw, uc.size)
	if err != nil {
		if errors.Is(err, imaging.ErrImageTooLarge) {
			return "", httperr.ErrBusinessMsg(ErrInvalidImage.Code, "The uploaded image is too large")
		}
		return "", ErrInvalidImage
	}

	key := fmt.Sprintf("avatars/%d/%d/%s.webp", userID, contactID, uuid.NewString())
	if err := uc.storage.Put(ctx, key, img, imaging.ContentTypeWebP); err != nil {
		return "", err
	}

	var old string
	err = uc.deps.Repo.Atomic(ctx, userID, func(tx domain.Repository) error {
		c, err := tx.GetContact(ctx, userID, contactID)
		if err != nil {
			return err
		}
		old = c.AvatarKey
		return tx.SetAvatarKey(ctx, userID, contactID, key)
	})
	if err != nil {
		if delErr := uc.storage.Delete(ctx, key); delErr != nil {
			uc.deps.Log.Warn("failed to delete orphaned avatar", "key", key, "error", delErr)
		}
		return "", err
	}

	if old != "" && old != key {
		if err := uc.storage.Delete(ctx, old); err != nil {
			uc.deps.Log.Warn("failed to delete old avatar", "key", old, "error", err)
		}
	}

	uc.deps.record(audit.Event{
		UserID:   userID,
		Action:   audit.ActionAvatarUploaded,
		Entity:   audit.EntityContact,
		EntityID: entityID(contactID),
		Metadata: map[string]any{"key": key},
	})
	return key, nil
}
