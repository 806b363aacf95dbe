package store

import (
	"context"

	"church_admin/models"
)

var defaultUsersPagination = models.Pagination{Page: 1, Size: 20}

type UsersState struct {
	Request
	Users      []models.SystemUser `json:"users"`
	Pagination models.Pagination   `json:"pagination"`
}

type Users struct{ s *Store }

func (s *Store) Users() Users { return Users{s} }

func usersRequest(st *State) *Request { return &st.Users.Request }

func userID(u models.SystemUser) string { return u.ID }

func (u Users) Fetch(ctx context.Context, q models.UserQuery) error {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultUsersPagination.Size
	}
	_, err := dispatch(ctx, u.s, "users/fetchUsers", usersRequest, "Failed to fetch users",
		func(ctx context.Context) (*models.Page[models.SystemUser], error) {
			return u.s.client.ListUsers(ctx, q)
		},
		func(st *State, page *models.Page[models.SystemUser]) {
			st.Users.Users = page.Items
			st.Users.Pagination = page.Pagination
		})
	return err
}

func (u Users) Create(ctx context.Context, req models.CreateUserRequest) (*models.SystemUser, error) {
	return dispatch(ctx, u.s, "users/createUser", usersRequest, "Failed to create user",
		func(ctx context.Context) (*models.SystemUser, error) {
			return u.s.client.CreateUser(ctx, req)
		},
		func(st *State, user *models.SystemUser) {
			st.Users.Users = prepend(st.Users.Users, *user)
		})
}

func (u Users) Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.SystemUser, error) {
	return dispatch(ctx, u.s, "users/updateUser", usersRequest, "Failed to update user",
		func(ctx context.Context) (*models.SystemUser, error) {
			return u.s.client.UpdateUser(ctx, id, req)
		},
		func(st *State, user *models.SystemUser) {
			st.Users.Users = replaceByID(st.Users.Users, *user, userID)
		})
}

func (u Users) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, u.s, "users/deleteUser", usersRequest, "Failed to delete user",
		func(ctx context.Context) (string, error) {
			return id, u.s.client.DeleteUser(ctx, id)
		},
		func(st *State, id string) {
			st.Users.Users = removeByID(st.Users.Users, id, userID)
		})
	return err
}

// ResetPassword sets a new password for another user; the returned record
// replaces the listed one.
func (u Users) ResetPassword(ctx context.Context, id, newPassword string) error {
	_, err := dispatch(ctx, u.s, "users/resetPassword", usersRequest, "Failed to reset password",
		func(ctx context.Context) (*models.SystemUser, error) {
			return u.s.client.ResetUserPassword(ctx, id, models.ResetPasswordRequest{NewPassword: newPassword})
		},
		func(st *State, user *models.SystemUser) {
			st.Users.Users = replaceByID(st.Users.Users, *user, userID)
		})
	return err
}

func (u Users) ClearError() {
	u.s.update(func(st *State) { st.Users.Error = "" })
}
