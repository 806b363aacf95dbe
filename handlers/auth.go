package handlers

import (
	"log/slog"
	"net/http"

	"church_admin/middleware"
	"church_admin/models"
	"church_admin/navigation"
	"church_admin/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{store: s}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	auth := h.store.State().Auth
	respond(c, http.StatusOK, gin.H{
		"title":     "Sign in",
		"from":      c.Query("from"),
		"isLoading": auth.Loading,
		"error":     auth.Error,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.store.Auth().Login(c.Request.Context(), req.Username, req.Password); err != nil {
		failure(c, err, h.store.State().Auth.Error)
		return
	}

	from := c.Query("from")
	if from == "" {
		from = c.PostForm("from")
	}
	seeOther(c, navigation.AfterLogin(from))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Auth().Logout(c.Request.Context()); err != nil {
		slog.Error("Error clearing session on logout", "error", err)
	}
	c.Redirect(http.StatusSeeOther, navigation.LoginPath)
}

func (h *AuthHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, navigation.DashboardPath)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	if err := h.store.Auth().FetchCurrentUser(c.Request.Context()); err != nil {
		failure(c, err, h.store.State().Auth.Error)
		return
	}

	auth := h.store.State().Auth
	view := gin.H{
		"user":       auth.User,
		"roleLabel":  auth.Role().Label(),
		"navigation": navigationFor(auth.Role()),
		"success":    c.Query("success"),
	}
	if claims, err := middleware.TokenClaims(auth.Token); err == nil {
		view["token"] = gin.H{
			"subject":   claims.Subject,
			"role":      claims.Role,
			"issuedAt":  claims.IssuedAt,
			"expiresAt": claims.ExpiresAt,
		}
	} else {
		slog.Debug("Session token has no readable claims", "error", err)
	}
	respond(c, http.StatusOK, view)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.store.Auth().ChangePassword(c.Request.Context(), req); err != nil {
		failure(c, err, h.store.State().Auth.Error)
		return
	}
	seeOther(c, "/profile?success=password")
}
