package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
	"github.com/BruksfildServices01/tutor-contacts/internal/httpresp"
	"github.com/BruksfildServices01/tutor-contacts/internal/middleware"
	ucContact "github.com/BruksfildServices01/tutor-contacts/internal/usecase/contact"
)

type ExportHandler struct {
	export *ucContact.ExportContacts
}

func NewExportHandler(export *ucContact.ExportContacts) *ExportHandler {
	return &ExportHandler{export: export}
}

func (h *ExportHandler) Create(c *gin.Context) {
	key, err := h.export.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err, "failed_to_export_contacts")
		return
	}
	httpresp.Created(c, gin.H{"key": key})
}
