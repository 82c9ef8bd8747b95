package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
)

// AppointmentHandlers handles appointment HTTP requests
type AppointmentHandlers struct {
	aptSvc domain.AppointmentService
}

// NewAppointmentHandlers creates new appointment handlers
func NewAppointmentHandlers(aptSvc domain.AppointmentService) *AppointmentHandlers {
	return &AppointmentHandlers{aptSvc: aptSvc}
}

// BookRequest represents a patient booking request
type BookRequest struct {
	DoctorID uint   `json:"doctor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time" binding:"required"`
	Reason   string `json:"reason"`
}

// Book handles appointment creation (patient only)
func (h *AppointmentHandlers) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("15:04", req.TimeSlot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time, expected HH:MM"})
		return
	}

	accountID, _ := c.Get("account_id")

	apt, err := h.aptSvc.Book(c.Request.Context(), accountID.(uint), req.DoctorID, date, req.TimeSlot, req.Reason)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		case domain.ErrDoctorUnavailable:
			c.JSON(http.StatusConflict, gin.H{"error": "Doctor is not accepting appointments"})
		case domain.ErrSlotTaken:
			c.JSON(http.StatusConflict, gin.H{"error": "This slot is already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": appointmentResponse(apt)})
}

// Transition handles a doctor action on an appointment
func (h *AppointmentHandlers) Transition(c *gin.Context) {
	aptID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}
	action := domain.AppointmentAction(c.Param("action"))

	accountID, _ := c.Get("account_id")

	apt, err := h.aptSvc.Transition(c.Request.Context(), accountID.(uint), uint(aptID), action)
	if err != nil {
		switch err {
		case domain.ErrAppointmentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case domain.ErrForbidden:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your appointment"})
		case domain.ErrInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": "Action not allowed in current state"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": appointmentResponse(apt)})
}

// List returns appointments for the authenticated account's role
func (h *AppointmentHandlers) List(c *gin.Context) {
	accountID, _ := c.Get("account_id")
	role, _ := c.Get("account_role")

	apts, err := h.aptSvc.ListForAccount(c.Request.Context(), accountID.(uint), domain.Role(role.(string)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}

	out := make([]gin.H, 0, len(apts))
	for i := range apts {
		out = append(out, appointmentResponse(&apts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func appointmentResponse(apt *domain.Appointment) gin.H {
	return gin.H{
		"id":          apt.ID,
		"patient_id":  apt.PatientID,
		"doctor_id":   apt.DoctorID,
		"hospital_id": apt.HospitalID,
		"date":        apt.Date.Format("2006-01-02"),
		"time":        apt.TimeSlot,
		"status":      apt.Status,
		"reason":      apt.Reason,
		"created_at":  apt.CreatedAt,
		"updated_at":  apt.UpdatedAt,
	}
}
