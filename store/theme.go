package store

import (
	"context"
	"fmt"
	"strings"

	"church_admin/storage"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Scheme is a concrete color scheme.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// ParseScheme reads a client-reported color scheme such as the
// Sec-CH-Prefers-Color-Scheme header. Anything but "dark" is light.
func ParseScheme(s string) Scheme {
	if strings.EqualFold(strings.Trim(strings.TrimSpace(s), `"`), "dark") {
		return SchemeDark
	}
	return SchemeLight
}

type ThemeState struct {
	Theme       Theme  `json:"theme"`
	SystemTheme Scheme `json:"systemTheme"`
}

// Resolved is the scheme to render with.
func (t ThemeState) Resolved() Scheme {
	switch t.Theme {
	case ThemeDark:
		return SchemeDark
	case ThemeLight:
		return SchemeLight
	}
	return t.SystemTheme
}

type ThemePreference struct{ s *Store }

func (s *Store) Theme() ThemePreference { return ThemePreference{s} }

func (t ThemePreference) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}
	t.s.update(func(st *State) { st.Theme.Theme = theme })
	if err := t.s.storage.Set(ctx, storage.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("error storing theme: %w", err)
	}
	return nil
}

func (t ThemePreference) SetSystemTheme(scheme Scheme) {
	t.s.update(func(st *State) { st.Theme.SystemTheme = scheme })
}

func (t ThemePreference) Resolved() Scheme {
	return t.s.State().Theme.Resolved()
}
