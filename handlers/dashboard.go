package handlers

import (
	"context"
	"net/http"

	"church_admin/api"
	"church_admin/models"
	"church_admin/store"

	"github.com/gin-gonic/gin"
)

// MemberCounter returns the server-side member total for a status; an empty
// status counts everyone.
type MemberCounter interface {
	CountMembers(ctx context.Context, status models.MembershipStatus) (int, error)
}

type DashboardHandler struct {
	store   *store.Store
	counter MemberCounter
}

func NewDashboardHandler(s *store.Store, counter MemberCounter) *DashboardHandler {
	return &DashboardHandler{store: s, counter: counter}
}

type memberCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Visitor  int `json:"visitor"`
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var counts memberCounts
	targets := []struct {
		status models.MembershipStatus
		dst    *int
	}{
		{"", &counts.Total},
		{models.MembershipActive, &counts.Active},
		{models.MembershipInactive, &counts.Inactive},
		{models.MembershipVisitor, &counts.Visitor},
	}
	for _, t := range targets {
		n, err := h.counter.CountMembers(ctx, t.status)
		if err != nil {
			failure(c, err, api.ErrorMessage(err, "Failed to load member statistics"))
			return
		}
		*t.dst = n
	}

	auth := h.store.State().Auth
	name := ""
	if auth.User != nil {
		name = auth.User.DisplayName()
	}
	respond(c, http.StatusOK, gin.H{
		"greeting":   "Welcome back, " + name,
		"role":       auth.Role(),
		"roleLabel":  auth.Role().Label(),
		"counts":     counts,
		"navigation": navigationFor(auth.Role()),
	})
}
