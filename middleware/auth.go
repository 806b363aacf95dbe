package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"church_admin/models"
	"church_admin/navigation"
	"church_admin/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TrackView attaches the navigation view for the request path so API calls
// made while serving it can redirect.
func TrackView() gin.HandlerFunc {
	return func(c *gin.Context) {
		view := navigation.NewView(c.Request.URL.Path)
		c.Request = c.Request.WithContext(navigation.WithView(c.Request.Context(), view))
		c.Next()
	}
}

// RequireSession sends unauthenticated visitors to the login view,
// remembering where they were headed.
func RequireSession(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.State().Auth.IsAuthenticated {
			c.Redirect(http.StatusSeeOther, navigation.LoginURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps a signed-in user off the login view.
func RedirectIfAuthenticated(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.State().Auth.IsAuthenticated {
			c.Redirect(http.StatusSeeOther, navigation.AfterLogin(c.Query("from")))
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireRole(s *store.Store, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := s.State().Auth.Role()
		if !slices.Contains(roles, role) {
			slog.Warn("View denied for role", "path", c.Request.URL.Path, "role", role)
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this page"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// TokenClaims reads the claims of a bearer token without verifying it; the
// console never holds the signing key, so the result is informational only.
func TokenClaims(token string) (*models.Claims, error) {
	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}
