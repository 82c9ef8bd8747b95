package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharanikumar/medvault/domain"
)

// DoctorHandlers handles doctor profile and directory requests
type DoctorHandlers struct {
	doctorRepo  domain.DoctorRepository
	accountRepo domain.AccountRepository
}

// NewDoctorHandlers creates new doctor handlers
func NewDoctorHandlers(doctorRepo domain.DoctorRepository, accountRepo domain.AccountRepository) *DoctorHandlers {
	return &DoctorHandlers{doctorRepo: doctorRepo, accountRepo: accountRepo}
}

// ProfileRequest represents a doctor profile upsert
type ProfileRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name" binding:"required"`
	Specialization  string  `json:"specialization" binding:"required"`
	HospitalID      uint    `json:"hospital_id"`
	ConsultationFee float64 `json:"consultation_fee"`
	Available       bool    `json:"available"`
}

// UpdateProfile upserts the doctor's booking profile and marks the
// account profile-complete
func (h *DoctorHandlers) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID, _ := c.Get("account_id")

	profile := &domain.DoctorProfile{
		AccountID:       accountID.(uint),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialization:  req.Specialization,
		HospitalID:      req.HospitalID,
		ConsultationFee: req.ConsultationFee,
		Available:       req.Available,
	}
	if err := h.doctorRepo.Upsert(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	if err := h.accountRepo.MarkProfileComplete(c.Request.Context(), accountID.(uint)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doctorResponse(profile)})
}

// Search lists available doctors, optionally filtered by specialization
func (h *DoctorHandlers) Search(c *gin.Context) {
	profiles, err := h.doctorRepo.Search(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search doctors"})
		return
	}

	out := make([]gin.H, 0, len(profiles))
	for i := range profiles {
		out = append(out, doctorResponse(&profiles[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func doctorResponse(profile *domain.DoctorProfile) gin.H {
	return gin.H{
		"account_id":       profile.AccountID,
		"first_name":       profile.FirstName,
		"last_name":        profile.LastName,
		"specialization":   profile.Specialization,
		"hospital_id":      profile.HospitalID,
		"consultation_fee": profile.ConsultationFee,
		"available":        profile.Available,
	}
}
