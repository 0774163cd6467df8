package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interlinkedhq/interlinked/core/demo"
	"github.com/interlinkedhq/interlinked/core/user"
)

func Test_demoApi_create(t *testing.T) {
	app, _ := setup(t)

	tests := []httpTest{
		{
			name:     "empty body fails",
			method:   http.MethodPost,
			path:     "/v1/demos",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"name is a required field","phone":"phone is a required field",` +
				`"email":"email is a required field","business_name":"business_name is a required field",` +
				`"purpose":"purpose is a required field","date":"date is a required field","time":"time is a required field"}`),
		},
		{
			name:   "invalid email fails",
			method: http.MethodPost,
			path:   "/v1/demos",
			body: []byte(`{"name":"Jo Mo","phone":"+243123456789","email":"nope","business_name":"JoMo SARL",` +
				`"purpose":"automation","date":"2026-09-12","time":"10:00 AM"}`),
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

	t.Run("valid booking is created", func(t *testing.T) {
		body := []byte(`{"name":"Jo Mo","phone":"+243123456789","email":"jo@test.cd","business_name":"JoMo SARL",` +
			`"purpose":"automation","date":"2026-09-12","time":"10:00 AM"}`)
		req, rec := newRequest(http.MethodPost, "/v1/demos", body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var booking demo.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "JoMo SARL", booking.BusinessName)
		assert.Equal(t, "2026-09-12", booking.Date)
		assert.Equal(t, "10:00 AM", booking.Time)
	})
}

func Test_demoApi_query(t *testing.T) {
	app, deps := setup(t)

	admin := createUser(t, deps.usrRepo, "Admin", "admin", "admin@test.cd", "", []string{user.RoleAdmin}, true)

	b1, err := deps.demoSvc.Create(context.Background(), demo.NewBooking{
		Name: "Jo Mo", Phone: "+243123456789", Email: "jo@test.cd", BusinessName: "JoMo SARL",
		Purpose: "automation", Date: "2026-09-12", Time: "10:00 AM",
	})
	require.NoError(t, err)
	b2, err := deps.demoSvc.Create(context.Background(), demo.NewBooking{
		Name: "King", Phone: "+243987654321", Email: "king@test.cd", BusinessName: "King Biz",
		Purpose: "growth", Date: "2026-09-13", Time: "2:00 PM",
	})
	require.NoError(t, err)

	tests := []httpTest{
		{
			name:     "anonymous fails",
			method:   http.MethodGet,
			path:     "/v1/demos",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "admin gets bookings newest first",
			method:   http.MethodGet,
			path:     "/v1/demos",
			token:    getToken(t, admin),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, []demo.Booking{b2, b1}),
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
