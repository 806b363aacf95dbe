// Package store is the process-wide state container. Each slice owns one
// server-backed resource with its request status and pagination; every
// change goes through a reducer and is published to subscribers as a
// snapshot.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"church_admin/api"
	"church_admin/models"
	"church_admin/storage"
)

// Client is the subset of the API used by the slices.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.SystemUser, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.SystemUser, error)

	ListMembers(ctx context.Context, q models.MemberQuery) (*models.Page[models.Member], error)
	GetMember(ctx context.Context, id string) (*models.Member, error)
	CreateMember(ctx context.Context, in models.MemberInput) (*models.Member, error)
	UpdateMember(ctx context.Context, id string, in models.MemberInput) (*models.Member, error)
	DeleteMember(ctx context.Context, id string) error

	ListUsers(ctx context.Context, q models.UserQuery) (*models.Page[models.SystemUser], error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.SystemUser, error)
	UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.SystemUser, error)
	DeleteUser(ctx context.Context, id string) error
	ResetUserPassword(ctx context.Context, id string, req models.ResetPasswordRequest) (*models.SystemUser, error)

	ListAttendance(ctx context.Context, q models.AttendanceQuery) (*models.Page[models.AttendanceRecord], error)
}

// sessionNotifier is implemented by clients that end the session on a
// rejected token.
type sessionNotifier interface {
	OnSessionExpired(fn func(ctx context.Context))
}

const (
	SliceAuth       = "auth"
	SliceMembers    = "members"
	SliceUsers      = "users"
	SliceAttendance = "attendance"
	SliceTheme      = "theme"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

// Request is the bookkeeping of the last operation dispatched on a slice.
type Request struct {
	Status  Status `json:"status"`
	Loading bool   `json:"isLoading"`
	Error   string `json:"error,omitempty"`
}

type State struct {
	Auth       AuthState       `json:"auth"`
	Members    MembersState    `json:"members"`
	Users      UsersState      `json:"users"`
	Attendance AttendanceState `json:"attendance"`
	Theme      ThemeState      `json:"theme"`
}

type Store struct {
	client  Client
	storage storage.Storage
	log     *slog.Logger

	mu    sync.RWMutex
	state State

	subsMu sync.Mutex
	subs   map[int]func(State)
	nextID int
}

// New builds the store and rehydrates the session and theme from storage
// before returning.
func New(ctx context.Context, client Client, st storage.Storage, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{
		client:  client,
		storage: st,
		log:     log,
		subs:    make(map[int]func(State)),
		state:   initialState(),
	}

	if err := s.rehydrate(ctx); err != nil {
		return nil, err
	}
	if n, ok := client.(sessionNotifier); ok {
		n.OnSessionExpired(s.Auth().Expire)
	}
	return s, nil
}

func initialState() State {
	return State{
		Auth:       AuthState{Request: idle()},
		Members:    MembersState{Request: idle(), Members: []models.Member{}, Pagination: defaultMembersPagination},
		Users:      UsersState{Request: idle(), Users: []models.SystemUser{}, Pagination: defaultUsersPagination},
		Attendance: AttendanceState{Request: idle(), Records: []models.AttendanceRecord{}, Pagination: defaultAttendancePagination},
		Theme:      ThemeState{Theme: ThemeSystem, SystemTheme: SchemeLight},
	}
}

func idle() Request {
	return Request{Status: StatusIdle}
}

func (s *Store) rehydrate(ctx context.Context) error {
	token, hasToken, err := s.storage.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return fmt.Errorf("error reading stored token: %w", err)
	}
	rawUser, hasUser, err := s.storage.Get(ctx, storage.KeyUser)
	if err != nil {
		return fmt.Errorf("error reading stored user: %w", err)
	}
	theme, hasTheme, err := s.storage.Get(ctx, storage.KeyTheme)
	if err != nil {
		return fmt.Errorf("error reading stored theme: %w", err)
	}

	if hasToken && token != "" {
		s.state.Auth.Token = token
		s.state.Auth.IsAuthenticated = true
	}
	if hasUser && rawUser != "" && rawUser != "null" {
		var user models.SystemUser
		if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
			s.log.Warn("Ignoring unreadable stored user", "error", err)
		} else {
			s.state.Auth.User = &user
		}
	}
	if hasTheme && Theme(theme).Valid() {
		s.state.Theme.Theme = Theme(theme)
	}
	return nil
}

// State returns a snapshot of every slice.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Slice returns a snapshot of one slice by name.
func (s *Store) Slice(name string) (any, bool) {
	st := s.State()
	switch name {
	case SliceAuth:
		return st.Auth, true
	case SliceMembers:
		return st.Members, true
	case SliceUsers:
		return st.Users, true
	case SliceAttendance:
		return st.Attendance, true
	case SliceTheme:
		return st.Theme, true
	}
	return nil, false
}

// Subscribe registers fn to receive a snapshot after every state change.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// Close drops every subscriber. The store must not be used afterwards.
func (s *Store) Close() {
	s.subsMu.Lock()
	s.subs = make(map[int]func(State))
	s.subsMu.Unlock()
}

func (s *Store) update(reduce func(*State)) {
	s.mu.Lock()
	reduce(&s.state)
	snapshot := s.state.clone()
	s.mu.Unlock()

	s.subsMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// dispatch runs one asynchronous operation through pending, then fulfilled
// or rejected. The error is returned as well as reduced into the slice.
func dispatch[T any](
	ctx context.Context,
	s *Store,
	op string,
	req func(*State) *Request,
	fallback string,
	call func(context.Context) (T, error),
	fulfilled func(*State, T),
) (T, error) {
	s.update(func(st *State) {
		r := req(st)
		r.Status = StatusPending
		r.Loading = true
		r.Error = ""
	})

	result, err := call(ctx)
	if err != nil {
		msg := api.ErrorMessage(err, fallback)
		s.log.Warn("Operation rejected", "op", op, "error", err)
		s.update(func(st *State) {
			r := req(st)
			r.Status = StatusRejected
			r.Loading = false
			r.Error = msg
		})
		return result, err
	}

	s.update(func(st *State) {
		r := req(st)
		r.Status = StatusFulfilled
		r.Loading = false
		fulfilled(st, result)
	})
	return result, nil
}

func (st State) clone() State {
	out := st
	if st.Auth.User != nil {
		u := *st.Auth.User
		out.Auth.User = &u
	}
	out.Members.Members = slices.Clone(st.Members.Members)
	if st.Members.Current != nil {
		m := *st.Members.Current
		out.Members.Current = &m
	}
	out.Users.Users = slices.Clone(st.Users.Users)
	out.Attendance.Records = slices.Clone(st.Attendance.Records)
	return out
}

func mergePagination(current, patch models.Pagination) models.Pagination {
	if patch.Page > 0 {
		current.Page = patch.Page
	}
	if patch.Size > 0 {
		current.Size = patch.Size
	}
	if patch.Total > 0 {
		current.Total = patch.Total
	}
	if patch.Pages > 0 {
		current.Pages = patch.Pages
	}
	return current
}

func replaceByID[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	for i := range items {
		if id(items[i]) == key {
			items[i] = item
			break
		}
	}
	return items
}

func removeByID[T any](items []T, key string, id func(T) string) []T {
	return slices.DeleteFunc(items, func(v T) bool { return id(v) == key })
}

func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}
