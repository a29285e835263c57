package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func TestGoalService_CreateGoal(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewGoalService(storages, newTestAccess(t, storages), logger.Nop())
	createUser(t, storages, "u1", models.PlanFree)
	createSite(t, storages, "s1", "u1", "")
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.GoalRequest
		wantErr error
	}{
		{
			name: "pageview goal",
			req:  models.GoalRequest{SiteID: "s1", Name: "signup", Type: models.GoalPageview, Pattern: "/signup/*"},
		},
		{
			name: "event goal",
			req:  models.GoalRequest{SiteID: "s1", Name: "purchase", Type: models.GoalEvent, EventName: " Purchase "},
		},
		{
			name:    "relative pattern",
			req:     models.GoalRequest{SiteID: "s1", Name: "bad", Type: models.GoalPageview, Pattern: "signup"},
			wantErr: ErrValidation,
		},
		{
			name:    "event goal without name",
			req:     models.GoalRequest{SiteID: "s1", Name: "bad", Type: models.GoalEvent},
			wantErr: ErrValidation,
		},
		{
			name:    "foreign site",
			req:     models.GoalRequest{SiteID: "missing", Name: "x", Type: models.GoalPageview, Pattern: "/"},
			wantErr: ErrSiteNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal, err := svc.CreateGoal(ctx, "u1", tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s1", goal.SiteID)
		})
	}

	goals, err := svc.ListGoals(ctx, "u1", "s1")
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "Purchase", goals[1].EventName)
}

func TestGoalService_PlanLimitFollowsSiteOwner(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewGoalService(storages, newTestAccess(t, storages), logger.Nop())
	createUser(t, storages, "owner", models.PlanFree)
	createTeam(t, storages, "team", "team-owner", models.TeamMember{UserID: "editor", Role: models.RoleEditor})
	createSite(t, storages, "s1", "owner", "team")
	ctx := context.Background()

	limit := models.PlanFree.Limits().GoalsPerSite
	for i := 0; i < limit; i++ {
		_, err := svc.CreateGoal(ctx, "editor", models.GoalRequest{
			SiteID: "s1", Name: fmt.Sprintf("goal %d", i), Type: models.GoalPageview, Pattern: fmt.Sprintf("/p%d", i),
		})
		require.NoError(t, err)
	}

	_, err := svc.CreateGoal(ctx, "editor", models.GoalRequest{SiteID: "s1", Name: "one more", Type: models.GoalPageview, Pattern: "/x"})
	assert.ErrorIs(t, err, ErrPlanLimit)
}

func TestGoalService_DeleteGoal_RequiresConfigure(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewGoalService(storages, newTestAccess(t, storages), logger.Nop())
	createUser(t, storages, "owner", models.PlanFree)
	createTeam(t, storages, "team", "team-owner", models.TeamMember{UserID: "viewer", Role: models.RoleViewer})
	createSite(t, storages, "s1", "owner", "team")
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, "owner", models.GoalRequest{SiteID: "s1", Name: "signup", Type: models.GoalPageview, Pattern: "/signup"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteGoal(ctx, "viewer", goal.ID), ErrNoAccess)
	require.NoError(t, svc.DeleteGoal(ctx, "owner", goal.ID))
	assert.ErrorIs(t, svc.DeleteGoal(ctx, "owner", goal.ID), ErrGoalNotFound)
}
