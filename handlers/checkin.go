package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"church_admin/api"
	"church_admin/models"
	"church_admin/navigation"
	"church_admin/storage"

	"github.com/gin-gonic/gin"
)

const serviceHoursMessage = "Attendance is only open during service hours"

// KioskClient covers the API calls the public check-in kiosk makes.
type KioskClient interface {
	LookupCheckIn(ctx context.Context, phone string) (*models.CheckInLookup, error)
	ConfirmCheckIn(ctx context.Context, memberID string) error
	Register(ctx context.Context, reg models.Registration) (*models.Member, error)
}

// CheckInHandler serves the public kiosk: phone lookup, confirmation and
// visitor registration. The last phone that matched is remembered.
type CheckInHandler struct {
	client  KioskClient
	storage storage.Storage
}

func NewCheckInHandler(client KioskClient, st storage.Storage) *CheckInHandler {
	return &CheckInHandler{client: client, storage: st}
}

func (h *CheckInHandler) savedPhone(ctx context.Context) string {
	phone, _, err := h.storage.Get(ctx, storage.KeyCheckinPhone)
	if err != nil {
		slog.Warn("Failed to read saved check-in phone", "error", err)
	}
	return phone
}

func (h *CheckInHandler) savePhone(ctx context.Context, phone string) {
	if err := h.storage.Set(ctx, storage.KeyCheckinPhone, phone); err != nil {
		slog.Warn("Failed to save check-in phone", "error", err)
	}
}

func (h *CheckInHandler) CheckInPage(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"phone":   h.savedPhone(c.Request.Context()),
		"success": c.Query("success"),
	})
}

func (h *CheckInHandler) Lookup(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" form:"phone" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}
	phone := NormalizePhone(req.Phone)

	ctx := c.Request.Context()
	lookup, err := h.client.LookupCheckIn(ctx, phone)
	switch {
	case api.IsNotFound(err):
		c.Redirect(http.StatusSeeOther, navigation.RegisterURL(phone))
		return
	case api.IsForbidden(err):
		respond(c, http.StatusForbidden, gin.H{"error": serviceHoursMessage, "phone": phone})
		return
	case err != nil:
		failure(c, err, api.ErrorMessage(err, "An error occurred during lookup"))
		return
	}

	h.savePhone(ctx, phone)
	respond(c, http.StatusOK, gin.H{"phone": phone, "lookup": lookup})
}

func (h *CheckInHandler) Confirm(c *gin.Context) {
	var req struct {
		MemberID string `json:"memberId" form:"memberId" binding:"required"`
	}
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	err := h.client.ConfirmCheckIn(c.Request.Context(), req.MemberID)
	switch {
	case api.IsForbidden(err):
		respond(c, http.StatusForbidden, gin.H{"error": serviceHoursMessage})
		return
	case err != nil:
		failure(c, err, api.ErrorMessage(err, "Failed to check in. Please try again."))
		return
	}
	respond(c, http.StatusOK, gin.H{"checkedIn": true, "memberId": req.MemberID})
}

func (h *CheckInHandler) RegisterPage(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"phone":   c.Query("phone"),
		"genders": []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther},
	})
}

func (h *CheckInHandler) Register(c *gin.Context) {
	var reg models.Registration
	if err := c.ShouldBind(&reg); err != nil {
		bindError(c, err)
		return
	}
	reg.PhoneNumber = NormalizePhone(reg.PhoneNumber)

	ctx := c.Request.Context()
	if _, err := h.client.Register(ctx, reg); err != nil {
		failure(c, err, api.ErrorMessage(err, "Failed to register. Please try again."))
		return
	}

	h.savePhone(ctx, reg.PhoneNumber)
	c.Redirect(http.StatusSeeOther, navigation.CheckInPath+"?success=registered")
}
