package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interlinkedhq/interlinked/core/user"
	"github.com/interlinkedhq/interlinked/core/waitlist"
)

func Test_waitlistApi_create(t *testing.T) {
	app, _ := setup(t)

	tests := []httpTest{
		{
			name:     "empty body fails",
			method:   http.MethodPost,
			path:     "/v1/waitlist",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"name is a required field","email":"email is a required field",` +
				`"phone":"phone is a required field","purpose":"purpose is a required field"}`),
		},
		{
			name:     "invalid email fails",
			method:   http.MethodPost,
			path:     "/v1/waitlist",
			body:     []byte(`{"name":"Jo Mo","email":"nope","phone":"+243123456789","purpose":"networking"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
		{
			name:     "short name fails",
			method:   http.MethodPost,
			path:     "/v1/waitlist",
			body:     []byte(`{"name":"J","email":"jo@test.cd","phone":"+243123456789","purpose":"networking"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"name must be at least 2 characters in length"}`),
		},
		{
			name:     "unknown tier fails",
			method:   http.MethodPost,
			path:     "/v1/waitlist",
			body:     []byte(`{"name":"Jo Mo","email":"jo@test.cd","phone":"+243123456789","purpose":"networking","tier_interest":"emperor"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"tier_interest":"invalid tier"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("valid entry is created", func(t *testing.T) {
		body := []byte(`{"name":"Jo Mo","email":"Jo@Test.cd ","phone":"+243123456789",` +
			`"purpose":"networking","business_url":"https://jomo.cd","tier_interest":"royal"}`)
		req, rec := newRequest(http.MethodPost, "/v1/waitlist", body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var entry waitlist.Entry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "Jo Mo", entry.Name)
		assert.Equal(t, "jo@test.cd", entry.Email) // cleaned
		assert.Equal(t, waitlist.TierRoyal, entry.TierInterest)
		assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Minute)
	})
}

func Test_waitlistApi_query(t *testing.T) {
	app, deps := setup(t)

	admin := createUser(t, deps.usrRepo, "Admin", "admin", "admin@test.cd", "", []string{user.RoleAdmin}, true)
	member := createUser(t, deps.usrRepo, "Member", "member", "member@test.cd", "", []string{user.RoleMember}, true)

	e1, err := deps.waitlistSvc.Create(context.Background(), waitlist.NewEntry{
		Name: "Jo Mo", Email: "jo@test.cd", Phone: "+243123456789", Purpose: "networking",
	})
	require.NoError(t, err)
	e2, err := deps.waitlistSvc.Create(context.Background(), waitlist.NewEntry{
		Name: "King", Email: "king@test.cd", Phone: "+243987654321", Purpose: "growth",
	})
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:     "anonymous fails",
			method:   http.MethodGet,
			path:     "/v1/waitlist",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "member forbidden",
			method:   http.MethodGet,
			path:     "/v1/waitlist",
			token:    getToken(t, member),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error":"permission denied"}`),
		},
		{
			name:     "admin gets entries newest first",
			method:   http.MethodGet,
			path:     "/v1/waitlist",
			token:    getToken(t, admin),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []waitlist.Entry{e2, e1}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
