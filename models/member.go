package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "active"
	MembershipInactive MembershipStatus = "inactive"
	MembershipVisitor  MembershipStatus = "visitor"
)

var MembershipStatuses = []MembershipStatus{MembershipActive, MembershipInactive, MembershipVisitor}

type Member struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	SecondName       string           `json:"secondName,omitempty"`
	OtherNames       string           `json:"otherNames,omitempty"`
	LastName         string           `json:"lastName"`
	DateOfBirth      string           `json:"dateOfBirth"`
	Gender           Gender           `json:"gender"`
	PhoneNumber      string           `json:"phoneNumber,omitempty"`
	Email            string           `json:"email,omitempty"`
	Address          string           `json:"address,omitempty"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	DateJoined       string           `json:"dateJoined"`
	Notes            string           `json:"notes,omitempty"`
	CreatedAt        string           `json:"createdAt"`
	UpdatedAt        string           `json:"updatedAt"`
}

func (m Member) FullName() string {
	name := m.FirstName
	for _, part := range []string{m.SecondName, m.OtherNames, m.LastName} {
		if part != "" {
			name += " " + part
		}
	}
	return name
}

// MemberInput is the body of create and update calls. Form tags let the
// console accept either urlencoded forms or JSON.
type MemberInput struct {
	FirstName        string           `json:"firstName" form:"firstName" binding:"required"`
	SecondName       string           `json:"secondName,omitempty" form:"secondName"`
	OtherNames       string           `json:"otherNames,omitempty" form:"otherNames"`
	LastName         string           `json:"lastName" form:"lastName" binding:"required"`
	DateOfBirth      string           `json:"dateOfBirth" form:"dateOfBirth" binding:"required,isodate"`
	Gender           Gender           `json:"gender" form:"gender" binding:"required,oneof=male female other"`
	PhoneNumber      string           `json:"phoneNumber,omitempty" form:"phoneNumber" binding:"omitempty,phone"`
	Email            string           `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	Address          string           `json:"address,omitempty" form:"address"`
	MembershipStatus MembershipStatus `json:"membershipStatus" form:"membershipStatus" binding:"required,oneof=active inactive visitor"`
	DateJoined       string           `json:"dateJoined" form:"dateJoined" binding:"required,isodate"`
	Notes            string           `json:"notes,omitempty" form:"notes"`
}

// Registration is the public self-registration body posted from the check-in kiosk.
type Registration struct {
	FirstName        string           `json:"firstName" form:"firstName" binding:"required"`
	LastName         string           `json:"lastName" form:"lastName" binding:"required"`
	PhoneNumber      string           `json:"phoneNumber" form:"phone" binding:"required,phone"`
	Email            string           `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	DateOfBirth      string           `json:"dateOfBirth" form:"dateOfBirth" binding:"required,isodate"`
	Gender           Gender           `json:"gender" form:"gender" binding:"required,oneof=male female other"`
	DateJoined       string           `json:"dateJoined"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
}

type MemberQuery struct {
	Page   int
	Size   int
	Search string
	Status MembershipStatus
}
