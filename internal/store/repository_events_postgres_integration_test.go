//go:build integration

package store

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("docker is not available")
	}
}

// startPostgres runs a throwaway PostgreSQL container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "pixel",
				"POSTGRES_PASSWORD": "pixel",
				"POSTGRES_DB":       "analytics",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if termErr := container.Terminate(context.Background()); termErr != nil {
			t.Logf("terminate postgres container: %v", termErr)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://pixel:pixel@%s:%s/analytics?sslmode=disable", host, port.Port())
}

func TestPostgresEventRepository(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	repo, err := OpenEventRepository(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h int) int64 { return day.Add(time.Duration(h) * time.Hour).UnixMilli() }

	require.NoError(t, repo.InsertEvents(ctx, []models.Event{
		{ID: "1", SiteID: "s", Type: models.EventPageview, VisitorID: "A", SessionID: "A1", Path: "/", Browser: "Firefox", Timestamp: at(1)},
		{ID: "2", SiteID: "s", Type: models.EventPageview, VisitorID: "A", SessionID: "A1", Path: "/pricing", Browser: "Firefox", Timestamp: at(1)},
		{ID: "3", SiteID: "s", Type: models.EventPageview, VisitorID: "B", SessionID: "B1", Path: "/", Browser: "Chrome", Timestamp: at(5)},
		{ID: "4", SiteID: "s", Type: models.EventCustom, Name: "signup", VisitorID: "B", SessionID: "B1", Props: map[string]string{"plan": "pro"}, Timestamp: at(5)},
	}))

	f := models.EventFilter{
		SiteID: "s",
		From:   day.UnixMilli(),
		To:     day.Add(24 * time.Hour).UnixMilli(),
		Types:  []models.EventType{models.EventPageview, models.EventCustom},
	}

	summary, err := repo.Summary(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, models.Summary{Pageviews: 3, Visitors: 2, Sessions: 2, CustomEvents: 1}, summary)

	bounces, err := repo.Bounces(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bounces)

	points, err := repo.Timeseries(ctx, f, time.Hour.Milliseconds(), 0)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, day.Add(time.Hour), points[0].Time.UTC())

	pv := f
	pv.Types = []models.EventType{models.EventPageview}
	pages, err := repo.Breakdown(ctx, pv, models.DimPath, 10)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, models.BreakdownItem{Value: "/", Pageviews: 2, Visitors: 2}, pages[0])

	require.NoError(t, repo.InsertImported(ctx, []models.ImportedPageviews{
		{SiteID: "s", Day: "2026-03-01", Path: "/", Pageviews: 5, Visitors: 2},
	}))
	require.NoError(t, repo.InsertImported(ctx, []models.ImportedPageviews{
		{SiteID: "s", Day: "2026-03-01", Path: "/", Pageviews: 8, Visitors: 3},
	}))
	rows, err := repo.ImportedDaily(ctx, "s", "2026-03-01", "2026-03-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(8), rows[0].Pageviews)

	require.NoError(t, repo.DeleteSite(ctx, "s"))
	count, err := repo.CountEvents(ctx, []string{"s"}, f.From, f.To)
	require.NoError(t, err)
	assert.Zero(t, count)
}
