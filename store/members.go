package store

import (
	"context"

	"church_admin/models"
)

var defaultMembersPagination = models.Pagination{Page: 1, Size: 10}

type MembersState struct {
	Request
	Members    []models.Member   `json:"members"`
	Current    *models.Member    `json:"currentMember"`
	Pagination models.Pagination `json:"pagination"`
}

type Members struct{ s *Store }

func (s *Store) Members() Members { return Members{s} }

func membersRequest(st *State) *Request { return &st.Members.Request }

func memberID(m models.Member) string { return m.ID }

// Fetch replaces the collection and pagination with the requested page.
func (m Members) Fetch(ctx context.Context, q models.MemberQuery) error {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 {
		q.Size = defaultMembersPagination.Size
	}
	_, err := dispatch(ctx, m.s, "members/fetchMembers", membersRequest, "Failed to fetch members",
		func(ctx context.Context) (*models.Page[models.Member], error) {
			return m.s.client.ListMembers(ctx, q)
		},
		func(st *State, page *models.Page[models.Member]) {
			st.Members.Members = page.Items
			st.Members.Pagination = page.Pagination
		})
	return err
}

// FetchByID loads one member into Current and returns it.
func (m Members) FetchByID(ctx context.Context, id string) (*models.Member, error) {
	return dispatch(ctx, m.s, "members/fetchMemberById", membersRequest, "Failed to fetch member",
		func(ctx context.Context) (*models.Member, error) {
			return m.s.client.GetMember(ctx, id)
		},
		func(st *State, member *models.Member) {
			current := *member
			st.Members.Current = &current
		})
}

// Create puts the new member first, whatever the server's sort order.
func (m Members) Create(ctx context.Context, in models.MemberInput) (*models.Member, error) {
	return dispatch(ctx, m.s, "members/createMember", membersRequest, "Failed to create member",
		func(ctx context.Context) (*models.Member, error) {
			return m.s.client.CreateMember(ctx, in)
		},
		func(st *State, member *models.Member) {
			st.Members.Members = prepend(st.Members.Members, *member)
		})
}

func (m Members) Update(ctx context.Context, id string, in models.MemberInput) (*models.Member, error) {
	return dispatch(ctx, m.s, "members/updateMember", membersRequest, "Failed to update member",
		func(ctx context.Context) (*models.Member, error) {
			return m.s.client.UpdateMember(ctx, id, in)
		},
		func(st *State, member *models.Member) {
			st.Members.Members = replaceByID(st.Members.Members, *member, memberID)
			if st.Members.Current != nil && st.Members.Current.ID == member.ID {
				updated := *member
				st.Members.Current = &updated
			}
		})
}

func (m Members) Delete(ctx context.Context, id string) error {
	_, err := dispatch(ctx, m.s, "members/deleteMember", membersRequest, "Failed to delete member",
		func(ctx context.Context) (string, error) {
			return id, m.s.client.DeleteMember(ctx, id)
		},
		func(st *State, id string) {
			st.Members.Members = removeByID(st.Members.Members, id, memberID)
			if st.Members.Current != nil && st.Members.Current.ID == id {
				st.Members.Current = nil
			}
		})
	return err
}

func (m Members) ClearError() {
	m.s.update(func(st *State) { st.Members.Error = "" })
}

func (m Members) ClearCurrent() {
	m.s.update(func(st *State) { st.Members.Current = nil })
}

// SetPagination overrides the non-zero fields of p.
func (m Members) SetPagination(p models.Pagination) {
	m.s.update(func(st *State) {
		st.Members.Pagination = mergePagination(st.Members.Pagination, p)
	})
}
