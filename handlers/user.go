package handlers

import (
	"net/http"

	"church_admin/models"
	"church_admin/store"

	"github.com/gin-gonic/gin"
)

// UserHandler manages console accounts. Routes are limited to super admins.
type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	q := models.UserQuery{
		Page:     intQuery(c, "page"),
		PageSize: intQuery(c, "page_size"),
		Role:     models.Role(c.Query("role")),
	}
	if err := h.store.Users().Fetch(c.Request.Context(), q); err != nil {
		failure(c, err, h.store.State().Users.Error)
		return
	}

	st := h.store.State()
	respond(c, http.StatusOK, gin.H{
		"users":      st.Users.Users,
		"pagination": st.Users.Pagination,
		"roles":      models.RoleLabels,
		"navigation": navigationFor(st.Auth.Role()),
	})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.store.Users().Create(c.Request.Context(), req); err != nil {
		failure(c, err, h.store.State().Users.Error)
		return
	}
	seeOther(c, "/users")
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.store.Users().Update(c.Request.Context(), c.Param("id"), req); err != nil {
		failure(c, err, h.store.State().Users.Error)
		return
	}
	seeOther(c, "/users")
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.Users().Delete(c.Request.Context(), c.Param("id")); err != nil {
		failure(c, err, h.store.State().Users.Error)
		return
	}
	seeOther(c, "/users")
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.store.Users().ResetPassword(c.Request.Context(), c.Param("id"), req.NewPassword); err != nil {
		failure(c, err, h.store.State().Users.Error)
		return
	}
	seeOther(c, "/users?success=password-reset")
}
