package handlers

import (
	"net/http"
	"time"

	"church_admin/models"
	"church_admin/store"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewAttendanceHandler(s *store.Store) *AttendanceHandler {
	return &AttendanceHandler{store: s, now: time.Now}
}

// GetAttendances lists records for one service date, today unless a date
// is given.
func (h *AttendanceHandler) GetAttendances(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = h.now().Format(time.DateOnly)
	} else if _, err := time.Parse(time.DateOnly, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must use the YYYY-MM-DD format"})
		return
	}

	q := models.AttendanceQuery{
		Page:           intQuery(c, "page"),
		Size:           intQuery(c, "size"),
		AttendanceDate: date,
		Status:         models.AttendanceStatus(c.Query("status")),
		MemberID:       c.Query("member_id"),
	}
	if err := h.store.Attendance().Fetch(c.Request.Context(), q); err != nil {
		failure(c, err, h.store.State().Attendance.Error)
		return
	}

	st := h.store.State()
	respond(c, http.StatusOK, gin.H{
		"records":    st.Attendance.Records,
		"pagination": st.Attendance.Pagination,
		"date":       date,
		"status":     q.Status,
		"memberId":   q.MemberID,
		"navigation": navigationFor(st.Auth.Role()),
	})
}
