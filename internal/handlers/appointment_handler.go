package handlers

import (
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

type AppointmentHandler struct {
	add     *ucContact.AddAppointment
	replace *ucContact.ReplaceAppointment
	remove  *ucContact.RemoveAppointment
	view    *ucContact.ViewAppointments
}

func NewAppointmentHandler(
	add *ucContact.AddAppointment,
	replace *ucContact.ReplaceAppointment,
	remove *ucContact.RemoveAppointment,
	view *ucContact.ViewAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		add:     add,
		replace: replace,
		remove:  remove,
		view:    view,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddAppointmentRequest struct {
	Appointment string `json:"appointment" binding:"required"`
}

type ReplaceAppointmentRequest struct {
	Target      string `json:"target" binding:"required"`
	Replacement string `json:"replacement" binding:"required"`
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *AppointmentHandler) Add(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AddAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ct, err := h.add.Execute(c.Request.Context(), middleware.UserID(c), id, req.Appointment)
	if err != nil {
		httperr.FromError(c, err, "failed_to_add_appointment")
		return
	}
	httpresp.Created(c, dto.ContactFrom(ct))
}

func (h *AppointmentHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ReplaceAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ct, err := h.replace.Execute(c.Request.Context(), middleware.UserID(c), id, req.Target, req.Replacement)
	if err != nil {
		httperr.FromError(c, err, "failed_to_replace_appointment")
		return
	}
	httpresp.OK(c, dto.ContactFrom(ct))
}

func (h *AppointmentHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw := c.Query("appointment")
	if raw == "" {
		httperr.BadRequest(c, "missing_appointment", "Query parameter 'appointment' is required")
		return
	}

	ct, err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), id, raw)
	if err != nil {
		httperr.FromError(c, err, "failed_to_remove_appointment")
		return
	}
	httpresp.OK(c, dto.ContactFrom(ct))
}

// ======================================================
// LISTING
// ======================================================

// View renders every appointment on the requested days, e.g.
// GET /api/appointments?days=MON,TUE&query=alex
func (h *AppointmentHandler) View(c *gin.Context) {
	listing, err := h.view.Execute(c.Request.Context(), ucContact.ViewAppointmentsInput{
		UserID: middleware.UserID(c),
		Days:   c.Query("days"),
		Query:  c.Query("query"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}
	httpresp.OK(c, listing)
}
