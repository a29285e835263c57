package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type goalService struct {
	goals  store.GoalRepository
	users  store.UserRepository
	access AccessService

	validator validators.Validator

	logger *logger.Logger
}

func NewGoalService(storages *store.Storages, access AccessService, logger *logger.Logger) GoalService {
	return &goalService{
		goals:     storages.GoalRepository,
		users:     storages.UserRepository,
		access:    access,
		validator: validators.NewValidator(),
		logger:    logger,
	}
}

func (g *goalService) CreateGoal(ctx context.Context, userID string, req models.GoalRequest) (models.Goal, error) {
	if err := g.validator.Validate(ctx, req); err != nil {
		return models.Goal{}, validationError(err)
	}
	if req.Type == models.GoalPageview && !strings.HasPrefix(req.Pattern, "/") && !strings.HasPrefix(req.Pattern, "*") {
		return models.Goal{}, invalid("pattern", "pattern must start with / or *")
	}

	site, err := g.access.AuthorizeSite(ctx, userID, req.SiteID, ActionSiteConfigure)
	if err != nil {
		return models.Goal{}, err
	}

	existing, err := g.goals.ListGoals(ctx, site.ID)
	if err != nil {
		return models.Goal{}, err
	}
	limits, err := ownerLimits(ctx, g.users, site)
	if err != nil {
		return models.Goal{}, err
	}
	if !models.Allows(limits.GoalsPerSite, len(existing)) {
		return models.Goal{}, fmt.Errorf("%w: %d goals per site", ErrPlanLimit, limits.GoalsPerSite)
	}

	goal := models.Goal{
		ID:        utils.NewID(),
		SiteID:    site.ID,
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		CreatedAt: time.Now().UTC(),
	}
	switch req.Type {
	case models.GoalPageview:
		goal.Pattern = req.Pattern
	case models.GoalEvent:
		goal.EventName = strings.TrimSpace(req.EventName)
	}

	if err = g.goals.CreateGoal(ctx, goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (g *goalService) ListGoals(ctx context.Context, userID, siteID string) ([]models.Goal, error) {
	if _, err := g.access.AuthorizeSite(ctx, userID, siteID, ActionStatsRead); err != nil {
		return nil, err
	}
	return g.goals.ListGoals(ctx, siteID)
}

func (g *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	goal, err := g.goals.GetGoal(ctx, goalID)
	if err != nil {
		return storeError(err, ErrGoalNotFound, nil)
	}
	if _, err = g.access.AuthorizeSite(ctx, userID, goal.SiteID, ActionSiteConfigure); err != nil {
		return err
	}
	return storeError(g.goals.DeleteGoal(ctx, goalID), ErrGoalNotFound, nil)
}

// ownerLimits returns the plan limits of the owner of site; per-site quotas
// follow the owner's plan whoever creates the resource.
func ownerLimits(ctx context.Context, users store.UserRepository, site models.Site) (models.PlanLimits, error) {
	owner, err := users.GetUser(ctx, site.OwnerID)
	if err != nil {
		return models.PlanLimits{}, storeError(err, ErrUserNotFound, nil)
	}
	return owner.Plan.Limits(), nil
}
