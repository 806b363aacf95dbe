package store

import (
	"context"
	"encoding/json"
	"fmt"

	"church_admin/models"
	"church_admin/storage"
)

type AuthState struct {
	Request
	User            *models.SystemUser `json:"user"`
	Token           string             `json:"-"`
	IsAuthenticated bool               `json:"isAuthenticated"`
}

func (a AuthState) Session() models.Session {
	return models.Session{User: a.User, Token: a.Token, IsAuthenticated: a.IsAuthenticated}
}

func (a AuthState) Role() models.Role {
	if a.User == nil {
		return ""
	}
	return a.User.Role
}

type Auth struct{ s *Store }

func (s *Store) Auth() Auth { return Auth{s} }

func authRequest(st *State) *Request { return &st.Auth.Request }

// Login authenticates and persists the token and user record.
func (a Auth) Login(ctx context.Context, username, password string) error {
	_, err := dispatch(ctx, a.s, "auth/login", authRequest, "Login failed",
		func(ctx context.Context) (*models.LoginResponse, error) {
			res, err := a.s.client.Login(ctx, models.LoginRequest{Username: username, Password: password})
			if err != nil {
				return nil, err
			}
			if err := a.persist(ctx, res.AccessToken, &res.User); err != nil {
				return nil, err
			}
			return res, nil
		},
		func(st *State, res *models.LoginResponse) {
			user := res.User
			st.Auth.User = &user
			st.Auth.Token = res.AccessToken
			st.Auth.IsAuthenticated = true
		})
	if err != nil {
		a.s.update(func(st *State) { st.Auth.IsAuthenticated = false })
		return err
	}
	a.s.log.Info("Signed in", "username", username)
	return nil
}

func (a Auth) FetchCurrentUser(ctx context.Context) error {
	_, err := dispatch(ctx, a.s, "auth/getCurrentUser", authRequest, "Failed to fetch current user",
		func(ctx context.Context) (*models.SystemUser, error) {
			user, err := a.s.client.CurrentUser(ctx)
			if err != nil {
				return nil, err
			}
			return user, a.persistUser(ctx, user)
		},
		func(st *State, user *models.SystemUser) {
			st.Auth.User = user
		})
	return err
}

func (a Auth) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	_, err := dispatch(ctx, a.s, "auth/changePassword", authRequest, "Password change failed",
		func(ctx context.Context) (*models.SystemUser, error) {
			user, err := a.s.client.ChangePassword(ctx, req)
			if err != nil {
				return nil, err
			}
			return user, a.persistUser(ctx, user)
		},
		func(st *State, user *models.SystemUser) {
			st.Auth.User = user
		})
	return err
}

// Logout ends the session on explicit user request.
func (a Auth) Logout(ctx context.Context) error {
	err := a.s.storage.Remove(ctx, storage.KeyAccessToken, storage.KeyUser)
	a.reset()
	if err != nil {
		return fmt.Errorf("error clearing stored session: %w", err)
	}
	return nil
}

// Expire resets the session after the API adapter has already cleared storage.
func (a Auth) Expire(context.Context) {
	a.reset()
}

func (a Auth) ClearError() {
	a.s.update(func(st *State) { st.Auth.Error = "" })
}

func (a Auth) reset() {
	a.s.update(func(st *State) {
		st.Auth = AuthState{Request: idle()}
	})
}

// persist writes the user before the token, so a stored token always comes
// with its user record.
func (a Auth) persist(ctx context.Context, token string, user *models.SystemUser) error {
	if err := a.persistUser(ctx, user); err != nil {
		return err
	}
	if err := a.s.storage.Set(ctx, storage.KeyAccessToken, token); err != nil {
		if rmErr := a.s.storage.Remove(ctx, storage.KeyAccessToken, storage.KeyUser); rmErr != nil {
			a.s.log.Error("Failed to roll back stored session", "error", rmErr)
		}
		return fmt.Errorf("error storing token: %w", err)
	}
	return nil
}

func (a Auth) persistUser(ctx context.Context, user *models.SystemUser) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := a.s.storage.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("error storing user: %w", err)
	}
	return nil
}
