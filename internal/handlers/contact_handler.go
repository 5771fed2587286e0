package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-contacts/internal/dto"
	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
	"github.com/BruksfildServices01/tutor-contacts/internal/httpresp"
	"github.com/BruksfildServices01/tutor-contacts/internal/middleware"
	ucContact "github.com/BruksfildServices01/tutor-contacts/internal/usecase/contact"
)

// ======================================================
// HANDLER
// ======================================================

type ContactHandler struct {
	create *ucContact.CreateContact
	get    *ucContact.GetContact
	list   *ucContact.ListContacts
	edit   *ucContact.EditContact
	delete *ucContact.DeleteContact
}

func NewContactHandler(
	create *ucContact.CreateContact,
	get *ucContact.GetContact,
	list *ucContact.ListContacts,
	edit *ucContact.EditContact,
	del *ucContact.DeleteContact,
) *ContactHandler {
	return &ContactHandler{
		create: create,
		get:    get,
		list:   list,
		edit:   edit,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateContactRequest struct {
	Name         string   `json:"name"`
	Phone        *string  `json:"phone"`
	Email        *string  `json:"email"`
	Address      *string  `json:"address"`
	Note         *string  `json:"note"`
	Level        *string  `json:"level"`
	Subjects     []string `json:"subjects"`
	Tags         []string `json:"tags"`
	Appointments []string `json:"appointments"`
}

// EditContactRequest leaves a field unchanged when it is absent from the
// body. A blank string clears an optional field.
type EditContactRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	Note         *string   `json:"note"`
	Level        *string   `json:"level"`
	Subjects     *[]string `json:"subjects"`
	Tags         *[]string `json:"tags"`
	Appointments *[]string `json:"appointments"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucContact.CreateContactInput{
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Note:         req.Note,
		Level:        req.Level,
		Subjects:     req.Subjects,
		Tags:         req.Tags,
		Appointments: req.Appointments,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_contact")
		return
	}

	body := gin.H{"contact": dto.ContactFrom(out.Contact)}
	if out.Warning != "" {
		body["warning"] = out.Warning
	}
	httpresp.Created(c, body)
}

// ======================================================
// READ
// ======================================================

func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.list.Execute(c.Request.Context(), middleware.UserID(c), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_contacts")
		return
	}
	httpresp.List(c, dto.ContactsFrom(contacts))
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ct, err := h.get.Execute(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_contact")
		return
	}
	httpresp.OK(c, dto.ContactFrom(ct))
}

// ======================================================
// EDIT
// ======================================================

func (h *ContactHandler) Edit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EditContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ct, err := h.edit.Execute(c.Request.Context(), ucContact.EditContactInput{
		UserID:       middleware.UserID(c),
		ContactID:    id,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Note:         req.Note,
		Level:        req.Level,
		Subjects:     req.Subjects,
		Tags:         req.Tags,
		Appointments: req.Appointments,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_edit_contact")
		return
	}
	httpresp.OK(c, dto.ContactFrom(ct))
}

// ======================================================
// DELETE
// ======================================================

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_contact")
		return
	}
	c.Status(http.StatusNoContent)
}
