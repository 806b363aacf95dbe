// Package navigation tracks the console view being served and any redirect
// requested while serving it.
package navigation

import (
	"context"
	"net/url"
	"strings"
	"sync"
)

const (
	LoginPath     = "/login"
	CheckInPath   = "/checkin"
	RegisterPath  = "/register"
	DashboardPath = "/dashboard"
)

var publicViews = []string{LoginPath, CheckInPath, RegisterPath}

// IsPublic reports whether a view is reachable without a session.
func IsPublic(path string) bool {
	for _, p := range publicViews {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

type View struct {
	path string

	mu       sync.Mutex
	redirect string
}

func NewView(path string) *View {
	return &View{path: path}
}

func (v *View) Path() string {
	if v == nil {
		return ""
	}
	return v.path
}

// Redirect records a navigation; the last call wins.
func (v *View) Redirect(to string) {
	if v == nil {
		return
	}
	v.mu.Lock()
	v.redirect = to
	v.mu.Unlock()
}

func (v *View) Redirected() (string, bool) {
	if v == nil {
		return "", false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.redirect, v.redirect != ""
}

type viewKey struct{}

func WithView(ctx context.Context, v *View) context.Context {
	return context.WithValue(ctx, viewKey{}, v)
}

// FromContext returns the current view, or nil outside a console request.
func FromContext(ctx context.Context) *View {
	v, _ := ctx.Value(viewKey{}).(*View)
	return v
}

// LoginURL is the login view that returns to from after signing in.
func LoginURL(from string) string {
	if from == "" || from == LoginPath {
		return LoginPath
	}
	return LoginPath + "?from=" + url.QueryEscape(from)
}

// RegisterURL keeps the phone number entered at the kiosk.
func RegisterURL(phone string) string {
	return RegisterPath + "?phone=" + url.QueryEscape(phone)
}

// AfterLogin picks where a fresh session lands: the originally requested
// view when it is a local, non-public path, the dashboard otherwise.
func AfterLogin(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || IsPublic(from) {
		return DashboardPath
	}
	return from
}
