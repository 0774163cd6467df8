package echoapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interlinkedhq/interlinked/core/user"
	emailsvc "github.com/interlinkedhq/interlinked/services/email"
)

func Test_userApi_login(t *testing.T) {
	app, deps := setup(t)

	createUser(t, deps.usrRepo, "Jo Mo", "jomo", "jo@test.cd", "LePass#123", []string{user.RoleMember}, true)
	createUser(t, deps.usrRepo, "Sleepy", "sleepy", "sleepy@test.cd", "LePass#123", nil, false)

	tests := []httpTest{
		{
			name:     "empty body fails",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"username is a required field","password":"password is a required field"}`),
		},
		{
			name:     "unknown user fails",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"username":"ghost","password":"LePass#123"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"authentication failed"}`),
		},
		{
			name:     "wrong password fails",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"username":"jomo","password":"nope"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"authentication failed"}`),
		},
		{
			name:     "deactivated account fails",
			method:   http.MethodPost,
			path:     "/v1/users/login",
			body:     []byte(`{"username":"sleepy","password":"LePass#123"}`),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error":"account deactivated"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("valid credentials get a token", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/login", []byte(`{"username":"Jo@Test.cd","password":"LePass#123"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		claims := new(Claims)
		_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
			return appJWTConfig.SigningKey, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "jomo", claims.Username)
		assert.True(t, claims.IsMember)
		assert.False(t, claims.IsAdmin)
	})
}

func Test_userApi_query(t *testing.T) {
	app, deps := setup(t)

	admin := createUser(t, deps.usrRepo, "Admin", "admin", "admin@test.cd", "", []string{user.RoleAdmin}, true)
	member := createUser(t, deps.usrRepo, "Member", "member", "member@test.cd", "", []string{user.RoleMember}, true)
	naughty := createUser(t, deps.usrRepo, "N Dog", "ndog", "ndog@test.cd", "", []string{user.RoleMember}, false)

	adminToken := getToken(t, admin)

	tests := []httpTest{
		{
			name:     "anonymous fails",
			method:   http.MethodGet,
			path:     "/v1/users",
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "member forbidden",
			method:   http.MethodGet,
			path:     "/v1/users",
			token:    getToken(t, member),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error":"permission denied"}`),
		},
		{
			name:     "admin gets all users",
			method:   http.MethodGet,
			path:     "/v1/users",
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: marchallList(t, admin, member, naughty),
		},
		{
			name:     "search filter",
			method:   http.MethodGet,
			path:     "/v1/users?search=ndog",
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: marchallList(t, naughty),
		},
		{
			name:     "is_active filter",
			method:   http.MethodGet,
			path:     "/v1/users?" + url.Values{"is_active": {"false"}}.Encode(),
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: marchallList(t, naughty),
		},
		{
			name:     "role filter",
			method:   http.MethodGet,
			path:     "/v1/users?" + url.Values{"role": {user.RoleAdmin}}.Encode(),
			token:    adminToken,
			wantCode: http.StatusOK,
			wantData: marchallList(t, admin),
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

func Test_userApi_create(t *testing.T) {
	app, deps := setup(t)

	admin := createUser(t, deps.usrRepo, "Admin", "admin", "admin@test.cd", "", []string{user.RoleAdmin}, true)
	member := createUser(t, deps.usrRepo, "Member", "member", "member@test.cd", "", []string{user.RoleMember}, true)

	tests := []httpTest{
		{
			name:     "member cannot register users",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			token:    getToken(t, member),
			body:     []byte(`{"name":"New Guy","username":"newguy","email":"new@test.cd","password":"LePass#123","password_confirm":"LePass#123"}`),
			wantCode: http.StatusForbidden,
			wantData: []byte(`{"error":"permission denied"}`),
		},
		{
			name:     "duplicate username fails",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			token:    getToken(t, admin),
			body:     []byte(`{"name":"New Guy","username":"member","email":"new@test.cd","password":"LePass#123","password_confirm":"LePass#123"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username":"a user with this username already exists"}`),
		},
		{
			name:     "admin cannot grant a role above their own",
			method:   http.MethodPost,
			path:     "/v1/users/register",
			token:    getToken(t, admin),
			body: []byte(`{"name":"New Guy","username":"newguy","email":"new@test.cd","password":"LePass#123","password_confirm":"LePass#123",` +
				`"roles":["` + user.RoleAdminOwner + `"]}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"roles":"not enough rights to set these roles"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("admin registers a member", func(t *testing.T) {
		body := []byte(`{"name":"New Guy","username":"newguy","email":"new@test.cd","password":"LePass#123","password_confirm":"LePass#123",` +
			`"roles":["` + user.RoleMember + `"]}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/users/register", getToken(t, admin), body)
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var usr user.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &usr))
		assert.NotEmpty(t, usr.ID)
		assert.Equal(t, "newguy", usr.Username)
		assert.True(t, usr.IsMember())
		require.NotNil(t, usr.IsActive)
		assert.True(t, *usr.IsActive)
	})
}

func Test_userApi_passwordReset(t *testing.T) {
	app, deps := setup(t)

	usr := createUser(t, deps.usrRepo, "Jo Mo", "jomo", "jo@test.cd", "LePass#123", nil, true)

	successMsg := "If the email address supplied is associated with an active account on this system, " +
		"an email will arrive in your inbox shortly with instructions to reset your password."

	t.Run("known email sends reset instructions", func(t *testing.T) {
		emailsvc.SentMessages = nil

		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", []byte(`{"email":"jo@test.cd"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, SuccessResponse{Success: successMsg})}, rec)

		require.Len(t, emailsvc.SentMessages, 1)
		sent := emailsvc.SentMessages[0]
		require.Len(t, sent.To, 1)
		assert.Equal(t, usr.Email, sent.To[0].Address)
		assert.Contains(t, sent.TextContent, "password-reset-confirm?uid=")
	})

	t.Run("unknown email still succeeds", func(t *testing.T) {
		emailsvc.SentMessages = nil

		req, rec := newRequest(http.MethodPost, "/v1/users/password-reset", []byte(`{"email":"ghost@test.cd"}`))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, emailsvc.SentMessages)
	})
}

func Test_userApi_tokenRefresh(t *testing.T) {
	app, deps := setup(t)

	usr := createUser(t, deps.usrRepo, "Jo Mo", "jomo", "jo@test.cd", "LePass#123", nil, true)

	t.Run("valid token gets refreshed", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", getToken(t, usr))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("anonymous fails", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/token-refresh")
		app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
