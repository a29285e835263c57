package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/service/rbac"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// Action is a permission checked against the role of a user.
type Action string

const (
	ActionStatsRead     Action = "stats:read"
	ActionSiteConfigure Action = "site:configure"
	ActionSiteManage    Action = "site:manage"
	ActionSiteDelete    Action = "site:delete"
	ActionTeamRead      Action = "team:read"
	ActionTeamManage    Action = "team:manage"
)

type accessService struct {
	sites    store.SiteRepository
	teams    store.TeamRepository
	enforcer *rbac.Enforcer

	logger *logger.Logger
}

func NewAccessService(sites store.SiteRepository, teams store.TeamRepository, enforcer *rbac.Enforcer, logger *logger.Logger) AccessService {
	return &accessService{
		sites:    sites,
		teams:    teams,
		enforcer: enforcer,
		logger:   logger,
	}
}

func (a *accessService) AuthorizeSite(ctx context.Context, userID, siteID string, action Action) (models.Site, error) {
	site, err := a.sites.GetSite(ctx, siteID)
	if err != nil {
		return models.Site{}, storeError(err, ErrSiteNotFound, nil)
	}

	role, err := a.siteRole(ctx, userID, site)
	if err != nil {
		return models.Site{}, err
	}
	if err = a.check(ctx, role, action); err != nil {
		logger.FromContext(ctx).Debug().
			Str("user_id", userID).
			Str("site_id", siteID).
			Str("role", string(role)).
			Str("action", string(action)).
			Msg("site access denied")
		return models.Site{}, err
	}

	return site, nil
}

func (a *accessService) AuthorizeTeam(ctx context.Context, userID, teamID string, action Action) (models.Team, error) {
	team, err := a.teams.GetTeam(ctx, teamID)
	if err != nil {
		return models.Team{}, storeError(err, ErrTeamNotFound, nil)
	}

	role, _ := team.RoleOf(userID)
	if err = a.check(ctx, role, action); err != nil {
		return models.Team{}, err
	}

	return team, nil
}

// siteRole returns the role of userID on site. The owner of the site is
// RoleOwner; the owner of the site's team manages it as RoleAdmin; other team
// members keep their team role.
func (a *accessService) siteRole(ctx context.Context, userID string, site models.Site) (models.Role, error) {
	if site.OwnerID == userID {
		return models.RoleOwner, nil
	}
	if site.TeamID == "" {
		return "", nil
	}

	team, err := a.teams.GetTeam(ctx, site.TeamID)
	if err != nil {
		// a dangling team reference grants nothing
		return "", storeError(err, ErrNoAccess, nil)
	}

	role, ok := team.RoleOf(userID)
	if !ok {
		return "", nil
	}
	if role == models.RoleOwner {
		return models.RoleAdmin, nil
	}
	return role, nil
}

func (a *accessService) check(ctx context.Context, role models.Role, action Action) error {
	allowed, err := a.enforcer.Allowed(string(role), string(action))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("action", string(action)).Msg("error enforcing access policy")
		return fmt.Errorf("error enforcing access policy: %w", err)
	}
	if !allowed {
		return ErrNoAccess
	}
	return nil
}
