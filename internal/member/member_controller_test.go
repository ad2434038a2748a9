package member_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golfclub/registry/internal/member"
	"github.com/golfclub/registry/internal/tournament"
	"github.com/golfclub/registry/pkg/validator"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidations()

	db := setupTestDB(t)
	r := gin.New()
	api := r.Group("/api")
	member.MemberRoutes(api, db)
	tournament.TournamentRoutes(api, db)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const johnJSON = `{"name":"John Doe","email":"john@x.com","phone":"+1 555-0100","membership_type":"PREMIUM","is_active":true}`

func createMember(t *testing.T, r *gin.Engine, body string) member.Member {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/members", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var m member.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.NotZero(t, m.ID)
	return m
}

func TestMemberEndpoints_CreateAndGet(t *testing.T) {
	r := setupRouter(t)

	created := createMember(t, r, johnJSON)
	assert.False(t, created.CreatedAt.IsZero())

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/members/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got member.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "John Doe", got.Name)
	assert.Equal(t, member.MembershipPremium, got.MembershipType)
}

func TestMemberEndpoints_GetUnknownIDReturns404WithEmptyBody(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/members/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMemberEndpoints_ValidationFailures(t *testing.T) {
	r := setupRouter(t)

	cases := map[string]string{
		"one character name": `{"name":"J","email":"john@x.com"}`,
		"missing email":      `{"name":"John Doe"}`,
		"malformed email":    `{"name":"John Doe","email":"not-an-email"}`,
		"bad phone":          `{"name":"John Doe","email":"john@x.com","phone":"call me"}`,
		"unknown type":       `{"name":"John Doe","email":"john@x.com","membership_type":"GOLD"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/members", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), "Validation failed")
		})
	}
}

func TestMemberEndpoints_DuplicateEmailConflicts(t *testing.T) {
	r := setupRouter(t)

	createMember(t, r, johnJSON)
	w := doJSON(r, http.MethodPost, "/api/members", `{"name":"Jane Doe","email":"john@x.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMemberEndpoints_UpdateReplacesRecordAndKeepsCreatedAt(t *testing.T) {
	r := setupRouter(t)

	created := createMember(t, r, johnJSON)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/members/%d", created.ID),
		`{"name":"John Q. Doe","email":"john@x.com","membership_type":"VIP"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated member.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "John Q. Doe", updated.Name)
	assert.Equal(t, member.MembershipVIP, updated.MembershipType)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestMemberEndpoints_UpdateUnknownIDReturns404(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/members/999", johnJSON)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMemberEndpoints_DeleteThenGetReturns404(t *testing.T) {
	r := setupRouter(t)

	created := createMember(t, r, johnJSON)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/members/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/members/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A second delete finds nothing to remove.
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/members/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMemberEndpoints_SearchByName(t *testing.T) {
	r := setupRouter(t)

	createMember(t, r, johnJSON)
	createMember(t, r, `{"name":"Alice Smith","email":"alice@x.com"}`)

	for _, q := range []string{"john", "JOHN"} {
		w := doJSON(r, http.MethodGet, "/api/members/search/name?name="+q, "")
		require.Equal(t, http.StatusOK, w.Code)
		var got []member.Member
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "John Doe", got[0].Name)
	}
}

func TestMemberEndpoints_SearchByMembershipType(t *testing.T) {
	r := setupRouter(t)

	createMember(t, r, johnJSON)

	w := doJSON(r, http.MethodGet, "/api/members/search/membership-type?membershipType=PREMIUM", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []member.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	w = doJSON(r, http.MethodGet, "/api/members/search/membership-type?membershipType=GOLD", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberEndpoints_SearchByTournamentDateRejectsMalformedDate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/members/search/tournament-date?startDate=15-04-2024", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
