package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HuongNguyenDev/beautycare-admin/internal/audit"
	booking "github.com/HuongNguyenDev/beautycare-admin/internal/domain/booking"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httperr"
	"github.com/HuongNguyenDev/beautycare-admin/internal/httpresp"
	"github.com/HuongNguyenDev/beautycare-admin/internal/models"
	ucAppointment "github.com/HuongNguyenDev/beautycare-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	confirmUC    *ucAppointment.ConfirmAppointment
	completeUC   *ucAppointment.CompleteAppointment
	cancelUC     *ucAppointment.CancelAppointment
	listUC       *ucAppointment.ListAppointmentsWithDetails
	eligibleUC   *ucAppointment.ListEligibleEmployees
}

func NewAppointmentHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointmentsWithDetails,
	eligibleUC *ucAppointment.ListEligibleEmployees,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		audit:        audit,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		confirmUC:    confirmUC,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
		eligibleUC:   eligibleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	EmployeeID uint   `json:"employeeId" binding:"required"`
	ServiceID  uint   `json:"serviceId" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date       *string `json:"date,omitempty"`
	Time       *string `json:"time,omitempty"`
	EmployeeID *uint   `json:"employeeId,omitempty"`
	ServiceID  *uint   `json:"serviceId,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid appointment payload")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:       req.Date,
		Time:       req.Time,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
	})
	if err != nil {
		respondUsecaseError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !booking.IsValidStatus(status) {
		httperr.BadRequest(c, "invalid_status", "unknown appointment status")
		return
	}
	date := c.Query("date")

	var employeeID uint
	if s := c.Query("employeeId"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_employee_id", "employeeId must be numeric")
			return
		}
		employeeID = uint(v)
	}

	rows, err := h.listUC.Execute(c.Request.Context(), status, date, employeeID)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// UPDATE (reschedule / reassign)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid appointment payload")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), id, ucAppointment.RescheduleAppointmentInput{
		Date:       req.Date,
		Time:       req.Time,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
	})
	if err != nil {
		respondUsecaseError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATE TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_confirm_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_complete_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_cancel_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "appointment_not_found", "appointment not found")
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "unexpected error")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "unexpected error")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// ELIGIBLE EMPLOYEES
// ======================================================

func (h *AppointmentHandler) EligibleEmployees(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	employees, err := h.eligibleUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondUsecaseError(c, err, "failed_to_list_eligible_employees")
		return
	}

	httpresp.List(c, employees)
}
