package store

import (
	"context"

	"church_admin/models"
)

var defaultAttendancePagination = models.Pagination{Page: 1, Size: 10}

type AttendanceState struct {
	Request
	Records    []models.AttendanceRecord `json:"records"`
	Pagination models.Pagination         `json:"pagination"`
}

// Attendance is read and filter only; records are created by the check-in kiosk.
type Attendance struct{ s *Store }

func (s *Store) Attendance() Attendance { return Attendance{s} }

func attendanceRequest(st *State) *Request { return &st.Attendance.Request }

func (a Attendance) Fetch(ctx context.Context, q models.AttendanceQuery) error {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = defaultAttendancePagination.Size
	}
	_, err := dispatch(ctx, a.s, "attendance/fetchAttendance", attendanceRequest, "Failed to fetch attendance records",
		func(ctx context.Context) (*models.Page[models.AttendanceRecord], error) {
			return a.s.client.ListAttendance(ctx, q)
		},
		func(st *State, page *models.Page[models.AttendanceRecord]) {
			st.Attendance.Records = page.Items
			st.Attendance.Pagination = page.Pagination
		})
	return err
}

func (a Attendance) ClearError() {
	a.s.update(func(st *State) { st.Attendance.Error = "" })
}

func (a Attendance) SetPagination(p models.Pagination) {
	a.s.update(func(st *State) {
		st.Attendance.Pagination = mergePagination(st.Attendance.Pagination, p)
	})
}
