package store

import (
	"context"
	"errors"

	"church_admin/models"
)

var errNotStubbed = errors.New("not stubbed")

// fakeClient is a stand-in API client; unset funcs fail.
type fakeClient struct {
	LoginFunc          func(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	CurrentUserFunc    func(ctx context.Context) (*models.SystemUser, error)
	ChangePasswordFunc func(ctx context.Context, req models.ChangePasswordRequest) (*models.SystemUser, error)

	ListMembersFunc  func(ctx context.Context, q models.MemberQuery) (*models.Page[models.Member], error)
	GetMemberFunc    func(ctx context.Context, id string) (*models.Member, error)
	CreateMemberFunc func(ctx context.Context, in models.MemberInput) (*models.Member, error)
	UpdateMemberFunc func(ctx context.Context, id string, in models.MemberInput) (*models.Member, error)
	DeleteMemberFunc func(ctx context.Context, id string) error

	ListUsersFunc         func(ctx context.Context, q models.UserQuery) (*models.Page[models.SystemUser], error)
	CreateUserFunc        func(ctx context.Context, req models.CreateUserRequest) (*models.SystemUser, error)
	UpdateUserFunc        func(ctx context.Context, id string, req models.UpdateUserRequest) (*models.SystemUser, error)
	DeleteUserFunc        func(ctx context.Context, id string) error
	ResetUserPasswordFunc func(ctx context.Context, id string, req models.ResetPasswordRequest) (*models.SystemUser, error)

	ListAttendanceFunc func(ctx context.Context, q models.AttendanceQuery) (*models.Page[models.AttendanceRecord], error)
}

func (f *fakeClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.SystemUser, error) {
	if f.CurrentUserFunc != nil {
		return f.CurrentUserFunc(ctx)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.SystemUser, error) {
	if f.ChangePasswordFunc != nil {
		return f.ChangePasswordFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) ListMembers(ctx context.Context, q models.MemberQuery) (*models.Page[models.Member], error) {
	if f.ListMembersFunc != nil {
		return f.ListMembersFunc(ctx, q)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) GetMember(ctx context.Context, id string) (*models.Member, error) {
	if f.GetMemberFunc != nil {
		return f.GetMemberFunc(ctx, id)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	if f.CreateMemberFunc != nil {
		return f.CreateMemberFunc(ctx, in)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	if f.UpdateMemberFunc != nil {
		return f.UpdateMemberFunc(ctx, id, in)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) DeleteMember(ctx context.Context, id string) error {
	if f.DeleteMemberFunc != nil {
		return f.DeleteMemberFunc(ctx, id)
	}
	return errNotStubbed
}

func (f *fakeClient) ListUsers(ctx context.Context, q models.UserQuery) (*models.Page[models.SystemUser], error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, q)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.SystemUser, error) {
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, req)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.SystemUser, error) {
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, id, req)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, id)
	}
	return errNotStubbed
}

func (f *fakeClient) ResetUserPassword(ctx context.Context, id string, req models.ResetPasswordRequest) (*models.SystemUser, error) {
	if f.ResetUserPasswordFunc != nil {
		return f.ResetUserPasswordFunc(ctx, id, req)
	}
	return nil, errNotStubbed
}

func (f *fakeClient) ListAttendance(ctx context.Context, q models.AttendanceQuery) (*models.Page[models.AttendanceRecord], error) {
	if f.ListAttendanceFunc != nil {
		return f.ListAttendanceFunc(ctx, q)
	}
	return nil, errNotStubbed
}
