package models

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleCallingTeam Role = "calling_team"
	RoleTextingTeam Role = "texting_team"
)

var RoleLabels = map[Role]string{
	RoleSuperAdmin:  "Super Admin",
	RoleCallingTeam: "Calling Team",
	RoleTextingTeam: "Texting Team",
}

func (r Role) Label() string {
	if label, ok := RoleLabels[r]; ok {
		return label
	}
	return string(r)
}

type SystemUser struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Username           string `json:"username"`
	FullName           string `json:"fullName"`
	Role               Role   `json:"role"`
	IsActive           bool   `json:"isActive"`
	MustChangePassword bool   `json:"mustChangePassword"`
	IsDeleted          bool   `json:"isDeleted,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
	LastLogin          string `json:"lastLogin,omitempty"`
}

func (u SystemUser) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type CreateUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Username string `json:"username" form:"username" binding:"required"`
	FullName string `json:"fullName" form:"fullName" binding:"required"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	Role     Role   `json:"role" form:"role" binding:"required,oneof=super_admin calling_team texting_team"`
}

// UpdateUserRequest only sends the fields that were supplied.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	FullName *string `json:"fullName,omitempty" form:"fullName"`
	Role     *Role   `json:"role,omitempty" form:"role" binding:"omitempty,oneof=super_admin calling_team texting_team"`
	IsActive *bool   `json:"isActive,omitempty" form:"isActive"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" form:"newPassword" binding:"required,min=8"`
}

type UserQuery struct {
	Page     int
	PageSize int
	Role     Role
}
