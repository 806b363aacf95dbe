package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

type AttendanceRecord struct {
	ID             string           `json:"id"`
	MemberID       string           `json:"memberId"`
	MemberName     string           `json:"memberName,omitempty"`
	AttendanceDate string           `json:"attendanceDate"`
	Status         AttendanceStatus `json:"status"`
	CheckInTime    string           `json:"checkInTime"`
	Notes          string           `json:"notes,omitempty"`
	IsDeleted      bool             `json:"isDeleted"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

type AttendanceQuery struct {
	Page           int
	Size           int
	AttendanceDate string
	Status         AttendanceStatus
	MemberID       string
}

type CheckInLookupRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type CheckInLookup struct {
	MemberID           string `json:"memberId"`
	MemberName         string `json:"memberName"`
	MembershipStatus   string `json:"membershipStatus"`
	AlreadyMarkedToday bool   `json:"alreadyMarkedToday"`
}

type CheckInConfirmRequest struct {
	MemberID string `json:"memberId"`
}
