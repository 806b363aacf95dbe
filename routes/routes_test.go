package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"church_admin/api"
	"church_admin/logger"
	"church_admin/metrics"
	"church_admin/models"
	"church_admin/storage"
	"church_admin/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t       *testing.T
	router  *gin.Engine
	store   *store.Store
	storage *storage.Memory
	mux     *http.ServeMux

	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newFixture serves the console against a fake church API. A non-empty role
// starts the console signed in.
func newFixture(t *testing.T, role models.Role, opts ...func(*Deps)) *fixture {
	t.Helper()
	f := &fixture{t: t, storage: storage.NewMemory(), mux: http.NewServeMux()}

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, r)
		f.bodies = append(f.bodies, string(body))
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(apiServer.Close)

	ctx := context.Background()
	if role != "" {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
			Role: string(role),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "u1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		require.NoError(t, f.storage.Set(ctx, storage.KeyAccessToken, token))
		raw, _ := json.Marshal(models.SystemUser{ID: "u1", Username: "ama", FullName: "Ama Mensah", Role: role})
		require.NoError(t, f.storage.Set(ctx, storage.KeyUser, string(raw)))
	}

	client := api.New(apiServer.URL+"/api/v1", 5*time.Second, f.storage, api.WithLogger(logger.Discard()))
	s, err := store.New(ctx, client, f.storage, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	f.store = s

	deps := Deps{
		Store:   s,
		Storage: f.storage,
		Counter: client,
		Kiosk:   client,
		Metrics: metrics.NewRecorder(),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	f.router = gin.New()
	SetupRoutes(f.router, deps)
	return f
}

func (f *fixture) handle(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) send(method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fixture) lastRequest() (*http.Request, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests)
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestProtectedView_RedirectsToLogin(t *testing.T) {
	f := newFixture(t, "")

	w := f.get("/members?page=2")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?from=%2Fmembers%3Fpage%3D2", w.Header().Get("Location"))
}

func TestLogin_SuccessRedirectsToRequestedView(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/auth/login", http.StatusOK,
		`{"accessToken":"T","tokenType":"bearer","user":{"id":"u1","username":"ama","role":"calling_team"}}`)

	w := f.postForm("/login?from=%2Fmembers", url.Values{"username": {"ama"}, "password": {"secret"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/members", w.Header().Get("Location"))

	token, ok, _ := f.storage.Get(context.Background(), storage.KeyAccessToken)
	assert.True(t, ok)
	assert.Equal(t, "T", token)
	assert.True(t, f.store.State().Auth.IsAuthenticated)

	_, body := f.lastRequest()
	assert.JSONEq(t, `{"username":"ama","password":"secret"}`, body)
}

func TestLogin_FailureShowsDetail(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/auth/login", http.StatusUnauthorized, `{"detail":"Incorrect username or password"}`)

	w := f.postForm("/login", url.Values{"username": {"ama"}, "password": {"nope"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect username or password", decode(t, w)["error"])
	assert.False(t, f.store.State().Auth.IsAuthenticated)
}

func TestLogin_MissingFields(t *testing.T) {
	f := newFixture(t, "")

	w := f.postForm("/login", url.Values{"username": {"ama"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]any)
	assert.Equal(t, "This field is required", fields["Password"])
}

func TestLoginView_RedirectsWhenSignedIn(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)

	w := f.get("/login")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestLogout_ClearsSession(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)

	w := f.postForm("/logout", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	_, ok, _ := f.storage.Get(context.Background(), storage.KeyAccessToken)
	assert.False(t, ok)
	assert.False(t, f.store.State().Auth.IsAuthenticated)
}

func TestMembers_ListPassesPaging(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/members", http.StatusOK,
		`{"items":[{"id":"m11","firstName":"Kofi","lastName":"Boateng"}],"page":2,"size":10,"total":35,"pages":4}`)

	w := f.get("/members?page=2&size=10&search=kofi")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Len(t, body["members"], 1)
	assert.Equal(t, map[string]any{"page": 2.0, "size": 10.0, "total": 35.0, "pages": 4.0}, body["pagination"])

	req, _ := f.lastRequest()
	assert.Equal(t, "2", req.URL.Query().Get("page"))
	assert.Equal(t, "10", req.URL.Query().Get("size"))
	assert.Equal(t, "kofi", req.URL.Query().Get("search"))
	assert.True(t, strings.HasPrefix(req.Header.Get("Authorization"), "Bearer "))
}

func TestMembers_ExpiredTokenEndsSession(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/members", http.StatusUnauthorized, `{"detail":"Token expired"}`)

	w := f.get("/members")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	_, ok, _ := f.storage.Get(context.Background(), storage.KeyAccessToken)
	assert.False(t, ok)
	_, ok, _ = f.storage.Get(context.Background(), storage.KeyUser)
	assert.False(t, ok)
	assert.False(t, f.store.State().Auth.IsAuthenticated)

	// the next protected view goes straight to login
	w = f.get("/dashboard")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", w.Header().Get("Location"))
}

func TestMembers_CreateValidatesAndPrepends(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("POST /api/v1/members", http.StatusCreated,
		`{"id":"m99","firstName":"Yaw","lastName":"Asante","membershipStatus":"active"}`)

	w := f.postForm("/members", url.Values{"firstName": {"Yaw"}, "lastName": {"Asante"}, "phoneNumber": {"12"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]any)
	assert.Equal(t, "Enter a valid phone number", fields["PhoneNumber"])
	assert.Equal(t, "This field is required", fields["DateOfBirth"])

	w = f.postForm("/members", url.Values{
		"firstName":        {"Yaw"},
		"lastName":         {"Asante"},
		"dateOfBirth":      {"1990-04-12"},
		"gender":           {"male"},
		"phoneNumber":      {"024 123 4567"},
		"membershipStatus": {"active"},
		"dateJoined":       {"2026-10-11"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/members", w.Header().Get("Location"))

	_, body := f.lastRequest()
	assert.Contains(t, body, `"phoneNumber":"0241234567"`)
	assert.Equal(t, "m99", f.store.State().Members.Members[0].ID)
}

func TestMembers_DetailUpdateDelete(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/members/m1", http.StatusOK, `{"id":"m1","firstName":"Abena","lastName":"Owusu"}`)
	f.handle("PUT /api/v1/members/m1", http.StatusOK, `{"id":"m1","firstName":"Abena","lastName":"Mensah"}`)
	f.handle("DELETE /api/v1/members/m1", http.StatusNoContent, ``)

	w := f.get("/members/m1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Abena Owusu", decode(t, w)["fullName"])

	w = f.postForm("/members/m1", url.Values{
		"firstName":        {"Abena"},
		"lastName":         {"Mensah"},
		"dateOfBirth":      {"1985-01-30"},
		"gender":           {"female"},
		"membershipStatus": {"active"},
		"dateJoined":       {"2020-06-01"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/members/m1", w.Header().Get("Location"))
	assert.Equal(t, "Mensah", f.store.State().Members.Current.LastName)

	w = f.postForm("/members/m1/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Nil(t, f.store.State().Members.Current)
}

func TestMembers_NotFound(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/members/missing", http.StatusNotFound, `{"detail":"Member not found"}`)

	w := f.get("/members/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Member not found", decode(t, w)["error"])
}

func TestDashboard_CountsByStatus(t *testing.T) {
	f := newFixture(t, models.RoleSuperAdmin)
	f.mux.HandleFunc("GET /api/v1/members", func(w http.ResponseWriter, r *http.Request) {
		totals := map[string]int{"": 120, "active": 90, "inactive": 10, "visitor": 20}
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{},
			"page":  1,
			"size":  1,
			"total": totals[r.URL.Query().Get("membership_status")],
		})
	})

	w := f.get("/dashboard")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, map[string]any{"total": 120.0, "active": 90.0, "inactive": 10.0, "visitor": 20.0}, body["counts"])
	assert.Equal(t, "Welcome back, Ama Mensah", body["greeting"])
	assert.Len(t, body["navigation"], 5)
}

func TestUsers_RequireSuperAdmin(t *testing.T) {
	f := newFixture(t, models.RoleTextingTeam)

	w := f.get("/users")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUsers_SuperAdminManagesAccounts(t *testing.T) {
	f := newFixture(t, models.RoleSuperAdmin)
	f.handle("GET /api/v1/users", http.StatusOK,
		`{"items":[{"id":"u2","username":"kofi","role":"texting_team"}],"page":1,"page_size":20,"total":1,"total_pages":1}`)
	f.handle("POST /api/v1/users/u2/reset-password", http.StatusOK,
		`{"id":"u2","username":"kofi","role":"texting_team","mustChangePassword":true}`)

	w := f.get("/users?role=texting_team")
	require.Equal(t, http.StatusOK, w.Code)
	req, _ := f.lastRequest()
	assert.Equal(t, "texting_team", req.URL.Query().Get("role"))
	assert.Equal(t, "20", req.URL.Query().Get("page_size"))

	w = f.postForm("/users/u2/reset-password", url.Values{"newPassword": {"short"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.postForm("/users/u2/reset-password", url.Values{"newPassword": {"long-enough-1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, f.store.State().Users.Users[0].MustChangePassword)
}

func TestAttendance_DefaultsToToday(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/attendance/", http.StatusOK, `{"items":[],"page":1,"size":10,"total":0,"pages":0}`)

	w := f.get("/attendance?status=present")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	req, _ := f.lastRequest()
	assert.Equal(t, time.Now().Format(time.DateOnly), req.URL.Query().Get("attendance_date"))
	assert.Equal(t, "present", req.URL.Query().Get("status"))

	w = f.get("/attendance?date=11-10-2026")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfile_ShowsUserAndClaims(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("GET /api/v1/auth/me", http.StatusOK, `{"id":"u1","username":"ama","fullName":"Ama Mensah","role":"calling_team"}`)

	w := f.get("/profile")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Calling Team", body["roleLabel"])
	token := body["token"].(map[string]any)
	assert.Equal(t, "u1", token["subject"])
	assert.Equal(t, "calling_team", token["role"])
}

func TestProfile_ChangePassword(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("POST /api/v1/auth/change-password", http.StatusOK, `{"id":"u1","username":"ama","mustChangePassword":false}`)

	w := f.postForm("/profile/password", url.Values{"currentPassword": {"same-pass-1"}, "newPassword": {"same-pass-1"}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]any)
	assert.Equal(t, "Must differ from the current password", fields["NewPassword"])

	w = f.postForm("/profile/password", url.Values{"currentPassword": {"old-pass-1"}, "newPassword": {"new-pass-1"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile?success=password", w.Header().Get("Location"))
}

func TestCheckIn_UnknownPhoneGoesToRegister(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/attendance/qr/lookup", http.StatusNotFound, `{"detail":"Member not found"}`)

	w := f.postForm("/checkin", url.Values{"phone": {"024-123-4567"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/register?phone=0241234567", w.Header().Get("Location"))
}

func TestCheckIn_OutsideServiceHours(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/attendance/qr/lookup", http.StatusForbidden, `{"detail":"Closed"}`)
	f.handle("POST /api/v1/attendance/qr/confirm", http.StatusForbidden, `{"detail":"Closed"}`)

	w := f.postForm("/checkin", url.Values{"phone": {"0241234567"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Attendance is only open during service hours", decode(t, w)["error"])

	w = f.postForm("/checkin/confirm", url.Values{"memberId": {"m1"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Attendance is only open during service hours", decode(t, w)["error"])
}

func TestCheckIn_RememberPhoneAndConfirm(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/attendance/qr/lookup", http.StatusOK,
		`{"memberId":"m1","memberName":"Abena Owusu","membershipStatus":"active","alreadyMarkedToday":false}`)
	f.handle("POST /api/v1/attendance/qr/confirm", http.StatusOK, `{"status":"present"}`)

	w := f.postForm("/checkin", url.Values{"phone": {"0241234567"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	lookup := decode(t, w)["lookup"].(map[string]any)
	assert.Equal(t, "m1", lookup["memberId"])

	_, body := f.lastRequest()
	assert.JSONEq(t, `{"phoneNumber":"0241234567"}`, body)

	w = f.get("/checkin")
	assert.Equal(t, "0241234567", decode(t, w)["phone"])

	w = f.postForm("/checkin/confirm", url.Values{"memberId": {"m1"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["checkedIn"])
}

// A stale token must not bounce a kiosk visitor to the login view.
func TestCheckIn_UnauthorizedStaysPublic(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("POST /api/v1/attendance/qr/lookup", http.StatusUnauthorized, `{"detail":"Token expired"}`)

	w := f.postForm("/checkin", url.Values{"phone": {"0241234567"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, f.store.State().Auth.IsAuthenticated)
	_, ok, _ := f.storage.Get(context.Background(), storage.KeyAccessToken)
	assert.True(t, ok)
}

func TestRegister_CreatesVisitorAndReturnsToCheckIn(t *testing.T) {
	f := newFixture(t, "")
	f.handle("POST /api/v1/members/", http.StatusCreated, `{"id":"m7","firstName":"Esi","lastName":"Quaye"}`)

	w := f.get("/register?phone=0201112222")
	assert.Equal(t, "0201112222", decode(t, w)["phone"])

	w = f.postForm("/register", url.Values{
		"firstName":   {"Esi"},
		"lastName":    {"Quaye"},
		"phone":       {"0201112222"},
		"dateOfBirth": {"2000-02-02"},
		"gender":      {"female"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/checkin?success=registered", w.Header().Get("Location"))

	_, body := f.lastRequest()
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &sent))
	assert.Equal(t, "visitor", sent["membershipStatus"])
	assert.Equal(t, time.Now().Format(time.DateOnly), sent["dateJoined"])

	phone, _, _ := f.storage.Get(context.Background(), storage.KeyCheckinPhone)
	assert.Equal(t, "0201112222", phone)
}

func TestTheme_PreferenceAndSystemScheme(t *testing.T) {
	f := newFixture(t, "")

	req := httptest.NewRequest(http.MethodGet, "/theme", nil)
	req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	body := decode(t, w)
	assert.Equal(t, "system", body["theme"])
	assert.Equal(t, "dark", body["resolved"])

	w = f.postForm("/theme", url.Values{"theme": {"light"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "light", decode(t, w)["resolved"])

	stored, _, _ := f.storage.Get(context.Background(), storage.KeyTheme)
	assert.Equal(t, "light", stored)

	w = f.postForm("/theme", url.Values{"theme": {"sepia"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t, "")

	w := f.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	w = f.get("/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCrossSite_NoCORSWithoutConfiguredOrigins(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)

	w := f.send(http.MethodGet, "/theme", map[string]string{"Origin": "https://evil.example"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCrossSite_StateChangingPostsRefused(t *testing.T) {
	f := newFixture(t, models.RoleCallingTeam)
	f.handle("DELETE /api/v1/members/m1", http.StatusNoContent, ``)

	w := f.send(http.MethodPost, "/members/m1/delete", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.send(http.MethodPost, "/members/m1/delete", map[string]string{"Sec-Fetch-Site": "cross-site"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.send(http.MethodPost, "/logout", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Zero(t, f.requestCount())
	assert.True(t, f.store.State().Auth.IsAuthenticated)

	w = f.send(http.MethodPost, "/members/m1/delete", map[string]string{"Origin": "http://example.com"})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	req, _ := f.lastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
}

func TestCrossSite_ConfiguredOriginAllowed(t *testing.T) {
	f := newFixture(t, "", func(d *Deps) {
		d.AllowedOrigins = []string{"https://admin.church.example"}
	})
	admin := map[string]string{"Origin": "https://admin.church.example"}

	w := f.send(http.MethodGet, "/theme", admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://admin.church.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = f.send(http.MethodGet, "/theme", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(url.Values{"theme": {"dark"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "https://admin.church.example")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
