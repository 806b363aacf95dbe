package handlers

import (
	"net/http"
	"strings"
	"time"

	"church_admin/models"
	"church_admin/store"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	store *store.Store
}

func NewMemberHandler(s *store.Store) *MemberHandler {
	return &MemberHandler{store: s}
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	q := models.MemberQuery{
		Page:   intQuery(c, "page"),
		Size:   intQuery(c, "size"),
		Search: strings.TrimSpace(c.Query("search")),
		Status: models.MembershipStatus(c.Query("status")),
	}
	if err := h.store.Members().Fetch(c.Request.Context(), q); err != nil {
		failure(c, err, h.store.State().Members.Error)
		return
	}

	st := h.store.State()
	respond(c, http.StatusOK, gin.H{
		"members":    st.Members.Members,
		"pagination": st.Members.Pagination,
		"search":     q.Search,
		"status":     q.Status,
		"navigation": navigationFor(st.Auth.Role()),
	})
}

// NewMember describes the empty create form.
func (h *MemberHandler) NewMember(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{
		"defaults": gin.H{
			"membershipStatus": models.MembershipActive,
			"dateJoined":       time.Now().Format(time.DateOnly),
		},
		"genders":  []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther},
		"statuses": models.MembershipStatuses,
	})
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var in models.MemberInput
	if err := c.ShouldBind(&in); err != nil {
		bindError(c, err)
		return
	}
	in.PhoneNumber = NormalizePhone(in.PhoneNumber)

	if _, err := h.store.Members().Create(c.Request.Context(), in); err != nil {
		failure(c, err, h.store.State().Members.Error)
		return
	}
	seeOther(c, "/members")
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	member, err := h.store.Members().FetchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, err, h.store.State().Members.Error)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"member":     member,
		"fullName":   member.FullName(),
		"navigation": navigationFor(h.store.State().Auth.Role()),
	})
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var in models.MemberInput
	if err := c.ShouldBind(&in); err != nil {
		bindError(c, err)
		return
	}
	in.PhoneNumber = NormalizePhone(in.PhoneNumber)

	id := c.Param("id")
	if _, err := h.store.Members().Update(c.Request.Context(), id, in); err != nil {
		failure(c, err, h.store.State().Members.Error)
		return
	}
	seeOther(c, "/members/"+id)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.store.Members().Delete(c.Request.Context(), c.Param("id")); err != nil {
		failure(c, err, h.store.State().Members.Error)
		return
	}
	seeOther(c, "/members")
}
