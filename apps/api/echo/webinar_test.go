package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interlinkedhq/interlinked/core/schedule"
	"github.com/interlinkedhq/interlinked/core/user"
	"github.com/interlinkedhq/interlinked/core/webinar"
	emailsvc "github.com/interlinkedhq/interlinked/services/email"
)

func Test_webinarApi_sessions(t *testing.T) {
	app, _ := setup(t)

	req, rec := newRequest(http.MethodGet, "/v1/webinar/sessions")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []schedule.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
	require.NotEmpty(t, sessions)
	require.LessOrEqual(t, len(sessions), 3)

	now := time.Now()
	for i, s := range sessions {
		assert.True(t, s.Instant.After(now), "session %d is not in the future", i)
		assert.NotEmpty(t, s.Label)
		assert.NotEmpty(t, s.DateKey)
		assert.NotEmpty(t, s.TimeKey)
		if i > 0 {
			assert.True(t, sessions[i-1].Instant.Before(s.Instant), "sessions are not sorted")
		}
	}
}

func Test_webinarApi_countdown(t *testing.T) {
	app, _ := setup(t)

	ctx, cancel := context.WithCancel(context.Background())
	req, rec := newRequest(http.MethodGet, "/v1/webinar/countdown")
	req = req.WithContext(ctx)

	time.AfterFunc(50*time.Millisecond, cancel)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	// at least the initial event must have been flushed before the client left
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "event: countdown\ndata: {\"seconds\": "), "body = %q", body)
}

func Test_webinarApi_register(t *testing.T) {
	app, _ := setup(t)

	tests := []httpTest{
		{
			name:     "empty body fails",
			method:   http.MethodPost,
			path:     "/v1/webinar/registrations",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"first_name":"first_name is a required field","last_name":"last_name is a required field",` +
				`"email":"email is a required field","phone":"phone is a required field",` +
				`"session_date":"session_date is a required field","session_time":"session_time is a required field"}`),
		},
		{
			name:   "invalid email fails",
			method: http.MethodPost,
			path:   "/v1/webinar/registrations",
			body: []byte(`{"first_name":"Jo","last_name":"Mo","email":"nope","phone":"+243123456789",` +
				`"session_date":"2026-09-12","session_time":"6:00 PM"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("valid registration is created and confirmed by email", func(t *testing.T) {
		emailsvc.SentMessages = nil

		body := []byte(`{"first_name":"Jo","last_name":"Mo","email":"jo@test.cd","phone":"+243123456789",` +
			`"session_date":"2026-09-12","session_time":"6:00 PM"}`)
		req, rec := newRequest(http.MethodPost, "/v1/webinar/registrations", body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var reg webinar.Registration
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
		assert.NotEmpty(t, reg.ID)
		assert.Equal(t, "Jo", reg.FirstName)
		assert.Equal(t, "2026-09-12", reg.SessionDate)

		require.Len(t, emailsvc.SentMessages, 1)
		sent := emailsvc.SentMessages[0]
		require.Len(t, sent.To, 1)
		assert.Equal(t, "jo@test.cd", sent.To[0].Address)
	})
}

func Test_webinarApi_query(t *testing.T) {
	app, deps := setup(t)

	admin := createUser(t, deps.usrRepo, "Admin", "admin", "admin@test.cd", "", []string{user.RoleAdmin}, true)
	member := createUser(t, deps.usrRepo, "Member", "member", "member@test.cd", "", []string{user.RoleMember}, true)

	r1, err := deps.webinarSvc.Create(context.Background(), webinar.NewRegistration{
		FirstName: "Jo", LastName: "Mo", Email: "jo@test.cd", Phone: "+243123456789",
		SessionDate: "2026-09-12", SessionTime: "6:00 PM",
	})
	require.NoError(t, err)
	r2, err := deps.webinarSvc.Create(context.Background(), webinar.NewRegistration{
		FirstName: "King", LastName: "Kin", Email: "king@test.cd", Phone: "+243987654321",
		SessionDate: "2026-09-28", SessionTime: "7:00 PM",
	})
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:     "anonymous fails",
			method:   http.MethodGet,
			path:     "/v1/webinar/registrations",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "member forbidden",
			method:   http.MethodGet,
			path:     "/v1/webinar/registrations",
			token:    getToken(t, member),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error":"permission denied"}`),
		},
		{
			name:     "admin gets registrations newest first",
			method:   http.MethodGet,
			path:     "/v1/webinar/registrations",
			token:    getToken(t, admin),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []webinar.Registration{r2, r1}),
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
