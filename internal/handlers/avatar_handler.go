package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
	"github.com/BruksfildServices01/tutor-contacts/internal/middleware"
	ucContact "github.com/BruksfildServices01/tutor-contacts/internal/usecase/contact"
)

const maxAvatarBytes = 5 << 20

type AvatarHandler struct {
	upload *ucContact.UploadAvatar
}

func NewAvatarHandler(upload *ucContact.UploadAvatar) *AvatarHandler {
	return &AvatarHandler{upload: upload}
}

// Upload expects a multipart form with the image in field "avatar".
func (h *AvatarHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Form field 'avatar' is required")
		return
	}
	if fh.Size > maxAvatarBytes {
		httperr.BadRequest(c, "avatar_too_large", "Avatars must be 5 MB or smaller")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, err, "failed_to_read_avatar")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxAvatarBytes+1))
	if err != nil {
		httperr.FromError(c, err, "failed_to_read_avatar")
		return
	}

	key, err := h.upload.Execute(c.Request.Context(), middleware.UserID(c), id, raw)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_avatar")
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_key": key})
}
