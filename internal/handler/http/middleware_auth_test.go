package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(f *fixture)
		header        map[string]string
		wantStatus    int
		wantPrincipal models.Principal
	}{
		{
			name:          "bearer token",
			setup:         func(f *fixture) { f.session() },
			header:        map[string]string{"Authorization": "Bearer " + testToken},
			wantStatus:    http.StatusOK,
			wantPrincipal: models.Principal{UserID: testUserID, TokenID: "jti-1"},
		},
		{
			name:          "lower-case scheme",
			setup:         func(f *fixture) { f.session() },
			header:        map[string]string{"Authorization": "bearer " + testToken},
			wantStatus:    http.StatusOK,
			wantPrincipal: models.Principal{UserID: testUserID, TokenID: "jti-1"},
		},
		{
			name:          "api key",
			setup:         func(f *fixture) { f.apiKey() },
			header:        map[string]string{apiKeyHeader: testAPIKey},
			wantStatus:    http.StatusOK,
			wantPrincipal: models.Principal{UserID: testUserID, APIKeyID: "key-1"},
		},
		{
			name:       "no credentials",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic scheme",
			header:     map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "blank token",
			header:     map[string]string{"Authorization": "Bearer    "},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "revoked token",
			setup: func(f *fixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), "revoked").Return(models.Token{}, service.ErrUnauthorized)
			},
			header:     map[string]string{"Authorization": "Bearer revoked"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown api key",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), "nope").Return(models.APIKey{}, service.ErrUnauthorized)
			},
			header:     map[string]string{apiKeyHeader: "nope"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			var got models.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/sites", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			f.handler.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPrincipal, got)
		})
	}
}

func TestSessionOnly_RejectsAPIKeys(t *testing.T) {
	f := newFixture(t)
	f.apiKey()

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/keys"},
		{http.MethodPost, "/api/keys"},
		{http.MethodPut, "/api/user/password"},
		{http.MethodPost, "/api/auth/logout"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := f.do(p.method, p.path, nil, withAPIKey(testAPIKey))

			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "FORBIDDEN", decodeBody[models.ErrorResponse](t, rec).Code)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{header: "  Bearer   abc  ", wantToken: "abc"},
		{header: "BEARER abc", wantToken: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Token abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, service.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
