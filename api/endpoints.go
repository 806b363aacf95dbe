package api

import (
	"context"
	"net/http"
	"time"

	"church_admin/models"
)

// Auth

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	err := c.do(ctx, call{method: http.MethodPost, path: loginPath, body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.SystemUser, error) {
	var out models.SystemUser
	if err := c.do(ctx, call{method: http.MethodGet, path: "/auth/me", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.SystemUser, error) {
	var out models.SystemUser
	if err := c.do(ctx, call{method: http.MethodPost, path: "/auth/change-password", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Members

func (c *Client) ListMembers(ctx context.Context, q models.MemberQuery) (*models.Page[models.Member], error) {
	query := pageQuery(q.Page, q.Size, "size")
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Status != "" {
		query.Set("membership_status", string(q.Status))
	}

	var out models.Page[models.Member]
	if err := c.do(ctx, call{method: http.MethodGet, path: "/members", query: query, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// CountMembers asks the server for the total number of members with a status.
func (c *Client) CountMembers(ctx context.Context, status models.MembershipStatus) (int, error) {
	page, err := c.ListMembers(ctx, models.MemberQuery{Page: 1, Size: 1, Status: status})
	if err != nil {
		return 0, err
	}
	return page.Total, nil
}

func (c *Client) GetMember(ctx context.Context, id string) (*models.Member, error) {
	var out models.Member
	err := c.do(ctx, call{method: http.MethodGet, path: idPath("/members", id), route: "/members/{id}", out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	var out models.Member
	if err := c.do(ctx, call{method: http.MethodPost, path: "/members", body: in, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	var out models.Member
	err := c.do(ctx, call{method: http.MethodPut, path: idPath("/members", id), route: "/members/{id}", body: in, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: idPath("/members", id), route: "/members/{id}"})
}

// Users

func (c *Client) ListUsers(ctx context.Context, q models.UserQuery) (*models.Page[models.SystemUser], error) {
	query := pageQuery(q.Page, q.PageSize, "page_size")
	if q.Role != "" {
		query.Set("role", string(q.Role))
	}

	var out models.Page[models.SystemUser]
	if err := c.do(ctx, call{method: http.MethodGet, path: "/users", query: query, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.SystemUser, error) {
	var out models.SystemUser
	if err := c.do(ctx, call{method: http.MethodPost, path: "/users", body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.SystemUser, error) {
	var out models.SystemUser
	err := c.do(ctx, call{method: http.MethodPut, path: idPath("/users", id), route: "/users/{id}", body: req, out: &out})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: idPath("/users", id), route: "/users/{id}"})
}

func (c *Client) ResetUserPassword(ctx context.Context, id string, req models.ResetPasswordRequest) (*models.SystemUser, error) {
	var out models.SystemUser
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   idPath("/users", id) + "/reset-password",
		route:  "/users/{id}/reset-password",
		body:   req,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Attendance

func (c *Client) ListAttendance(ctx context.Context, q models.AttendanceQuery) (*models.Page[models.AttendanceRecord], error) {
	query := pageQuery(q.Page, q.Size, "page_size")
	if q.AttendanceDate != "" {
		query.Set("attendance_date", q.AttendanceDate)
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	if q.MemberID != "" {
		query.Set("member_id", q.MemberID)
	}

	// trailing slash avoids a redirect from the API
	var out models.Page[models.AttendanceRecord]
	if err := c.do(ctx, call{method: http.MethodGet, path: "/attendance/", query: query, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

// Check-in kiosk. These calls work without a session.

func (c *Client) LookupCheckIn(ctx context.Context, phone string) (*models.CheckInLookup, error) {
	var out models.CheckInLookup
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/attendance/qr/lookup",
		body:   models.CheckInLookupRequest{PhoneNumber: phone},
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConfirmCheckIn(ctx context.Context, memberID string) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/attendance/qr/confirm",
		body:   models.CheckInConfirmRequest{MemberID: memberID},
	})
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.Member, error) {
	reg.MembershipStatus = models.MembershipVisitor
	if reg.DateJoined == "" {
		reg.DateJoined = time.Now().Format(time.DateOnly)
	}
	var out models.Member
	if err := c.do(ctx, call{method: http.MethodPost, path: "/members/", body: reg, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
