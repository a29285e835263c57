package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/mock"
	"github.com/MKhiriev/go-pixel-analytics/internal/service"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const testKey = "pa_live_server_key"

type fixture struct {
	auth     *mock.MockAuthService
	access   *mock.MockAccessService
	tracking *mock.MockTrackingService
	conn     *grpc.ClientConn
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:     mock.NewMockAuthService(ctrl),
		access:   mock.NewMockAccessService(ctrl),
		tracking: mock.NewMockTrackingService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:     f.auth,
		AccessService:   f.access,
		TrackingService: f.tracking,
	}, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	f.conn = conn
	return f
}

func testMessage() *TrackMessage {
	return &TrackMessage{
		TrackRequest: models.TrackRequest{
			SiteID: "s1",
			Type:   models.EventCustom,
			Name:   "signup",
			URL:    "https://example.com/welcome",
			Props:  map[string]string{"plan": "pro"},
		},
		IP:        "198.51.100.9",
		UserAgent: "Mozilla/5.0 sdk-test",
	}
}

func TestTrack(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{ID: "k1", UserID: "u1"}, nil)
	f.access.EXPECT().AuthorizeSite(gomock.Any(), "u1", "s1", service.ActionSiteConfigure).Return(models.Site{ID: "s1"}, nil)
	f.tracking.EXPECT().Track(gomock.Any(), testMessage().TrackRequest, models.ClientInfo{
		IP: "198.51.100.9", UserAgent: "Mozilla/5.0 sdk-test",
	}).Return(nil)

	reply, err := NewIngestClient(f.conn, testKey).Track(context.Background(), testMessage())

	require.NoError(t, err)
	assert.True(t, reply.Accepted)
}

func TestTrack_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantCode codes.Code
	}{
		{
			name: "unknown key",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{}, service.ErrUnauthorized)
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "site of another account",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{ID: "k1", UserID: "u1"}, nil)
				f.access.EXPECT().AuthorizeSite(gomock.Any(), "u1", "s1", gomock.Any()).Return(models.Site{}, service.ErrForbidden)
			},
			wantCode: codes.PermissionDenied,
		},
		{
			name: "invalid hit",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{ID: "k1", UserID: "u1"}, nil)
				f.access.EXPECT().AuthorizeSite(gomock.Any(), "u1", "s1", gomock.Any()).Return(models.Site{ID: "s1"}, nil)
				f.tracking.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(validators.NewValidationError("name", "is required"))
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "queue full",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{ID: "k1", UserID: "u1"}, nil)
				f.access.EXPECT().AuthorizeSite(gomock.Any(), "u1", "s1", gomock.Any()).Return(models.Site{ID: "s1"}, nil)
				f.tracking.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrUnavailable)
			},
			wantCode: codes.Unavailable,
		},
		{
			name: "store failure",
			setup: func(f *fixture) {
				f.auth.EXPECT().AuthenticateAPIKey(gomock.Any(), testKey).Return(models.APIKey{ID: "k1", UserID: "u1"}, nil)
				f.access.EXPECT().AuthorizeSite(gomock.Any(), "u1", "s1", gomock.Any()).Return(models.Site{}, errors.New("db down"))
			},
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := NewIngestClient(f.conn, testKey).Track(context.Background(), testMessage())

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.Internal {
				assert.NotContains(t, err.Error(), "db down")
			}
		})
	}
}

func TestTrack_MissingKey(t *testing.T) {
	f := newFixture(t)

	out := new(TrackReply)
	err := f.conn.Invoke(context.Background(), TrackMethod, testMessage(), out, grpc.CallContentSubtype(CodecName))

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAPIKeyFromMetadata(t *testing.T) {
	tests := []struct {
		name string
		md   metadata.MD
		want string
	}{
		{name: "x-api-key", md: metadata.Pairs("x-api-key", " k1 "), want: "k1"},
		{name: "bearer", md: metadata.Pairs("authorization", "Bearer k2"), want: "k2"},
		{name: "x-api-key wins", md: metadata.Pairs("x-api-key", "k1", "authorization", "Bearer k2"), want: "k1"},
		{name: "basic ignored", md: metadata.Pairs("authorization", "Basic abc")},
		{name: "empty", md: metadata.MD{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := metadata.NewIncomingContext(context.Background(), tt.md)
			assert.Equal(t, tt.want, apiKeyFromMetadata(ctx))
		})
	}
	assert.Empty(t, apiKeyFromMetadata(context.Background()))
}

func TestJSONCodec(t *testing.T) {
	c := jsonCodec{}
	raw, err := c.Marshal(testMessage())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"site_id":"s1"`)
	assert.Contains(t, string(raw), `"user_agent":"Mozilla/5.0 sdk-test"`)

	var got TrackMessage
	require.NoError(t, c.Unmarshal(raw, &got))
	assert.Equal(t, *testMessage(), got)
	assert.Equal(t, CodecName, c.Name())
}
