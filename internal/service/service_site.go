package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/config"
	"github.com/MKhiriev/go-pixel-analytics/internal/ingest"
	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const snippetTemplate = `<script defer data-site="%s" src="%s/js/script.js"></script>`

type siteService struct {
	sites  store.SiteRepository
	users  store.UserRepository
	teams  store.TeamRepository
	events store.EventRepository
	access AccessService

	validator validators.Validator
	publicURL string

	logger *logger.Logger
}

func NewSiteService(storages *store.Storages, access AccessService, cfg config.Server, logger *logger.Logger) SiteService {
	return &siteService{
		sites:     storages.SiteRepository,
		users:     storages.UserRepository,
		teams:     storages.TeamRepository,
		events:    storages.EventRepository,
		access:    access,
		validator: validators.NewValidator(),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

func (s *siteService) CreateSite(ctx context.Context, userID string, req models.SiteRequest) (models.SiteResponse, error) {
	log := logger.FromContext(ctx)

	domain, err := s.validate(ctx, req)
	if err != nil {
		return models.SiteResponse{}, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return models.SiteResponse{}, storeError(err, ErrUserNotFound, nil)
	}
	owned, err := s.sites.ListSitesByOwner(ctx, userID)
	if err != nil {
		return models.SiteResponse{}, err
	}
	if !models.Allows(user.Plan.Limits().Sites, len(owned)) {
		return models.SiteResponse{}, fmt.Errorf("%w: %d sites on the %s plan", ErrPlanLimit, len(owned), user.Plan)
	}

	if req.TeamID != "" {
		if _, err = s.access.AuthorizeTeam(ctx, userID, req.TeamID, ActionTeamManage); err != nil {
			return models.SiteResponse{}, err
		}
	}

	site := models.Site{
		ID:        utils.NewID(),
		OwnerID:   userID,
		TeamID:    req.TeamID,
		Domain:    domain,
		Name:      siteName(req.Name, domain),
		CreatedAt: time.Now().UTC(),
	}
	if err = s.sites.CreateSite(ctx, site); err != nil {
		return models.SiteResponse{}, storeError(err, nil, ErrDomainTaken)
	}

	log.Info().Str("site_id", site.ID).Str("domain", site.Domain).Msg("site created")
	return s.response(site), nil
}

func (s *siteService) GetSite(ctx context.Context, userID, siteID string) (models.SiteResponse, error) {
	site, err := s.access.AuthorizeSite(ctx, userID, siteID, ActionStatsRead)
	if err != nil {
		return models.SiteResponse{}, err
	}
	return s.response(site), nil
}

func (s *siteService) ListSites(ctx context.Context, userID string) ([]models.SiteResponse, error) {
	owned, err := s.sites.ListSitesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.ListTeamsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(owned))
	out := make([]models.SiteResponse, 0, len(owned))
	for _, site := range owned {
		seen[site.ID] = struct{}{}
		out = append(out, s.response(site))
	}
	for _, team := range teams {
		shared, err := s.sites.ListSitesByTeam(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		for _, site := range shared {
			if _, ok := seen[site.ID]; ok {
				continue
			}
			seen[site.ID] = struct{}{}
			out = append(out, s.response(site))
		}
	}

	return out, nil
}

// UpdateSite changes the domain, name or team of a site. Only the site owner
// may move a site between teams.
func (s *siteService) UpdateSite(ctx context.Context, userID, siteID string, req models.SiteRequest) (models.SiteResponse, error) {
	domain, err := s.validate(ctx, req)
	if err != nil {
		return models.SiteResponse{}, err
	}

	site, err := s.access.AuthorizeSite(ctx, userID, siteID, ActionSiteManage)
	if err != nil {
		return models.SiteResponse{}, err
	}

	if req.TeamID != site.TeamID {
		if site.OwnerID != userID {
			return models.SiteResponse{}, ErrNoAccess
		}
		if req.TeamID != "" {
			if _, err = s.access.AuthorizeTeam(ctx, userID, req.TeamID, ActionTeamManage); err != nil {
				return models.SiteResponse{}, err
			}
		}
	}

	site.Domain = domain
	site.Name = siteName(req.Name, domain)
	site.TeamID = req.TeamID
	if err = s.sites.UpdateSite(ctx, site); err != nil {
		return models.SiteResponse{}, storeError(err, ErrSiteNotFound, ErrDomainTaken)
	}

	return s.response(site), nil
}

func (s *siteService) DeleteSite(ctx context.Context, userID, siteID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.access.AuthorizeSite(ctx, userID, siteID, ActionSiteDelete); err != nil {
		return err
	}

	if err := s.sites.DeleteSite(ctx, siteID); err != nil {
		return storeError(err, ErrSiteNotFound, nil)
	}
	if err := s.events.DeleteSite(ctx, siteID); err != nil {
		// the site record is gone; orphaned rows are unreachable
		log.Err(err).Str("site_id", siteID).Msg("error deleting site events")
		return fmt.Errorf("error deleting site events: %w", err)
	}

	log.Info().Str("site_id", siteID).Msg("site deleted")
	return nil
}

func (s *siteService) validate(ctx context.Context, req models.SiteRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}

	domain := ingest.NormalizeDomain(req.Domain)
	if domain == "" || !strings.Contains(domain, ".") || strings.ContainsAny(domain, "/ ") {
		return "", invalid("domain", "domain must be a host name like example.com")
	}
	return domain, nil
}

func (s *siteService) response(site models.Site) models.SiteResponse {
	return models.SiteResponse{
		Site:    site,
		Snippet: fmt.Sprintf(snippetTemplate, site.ID, s.publicURL),
	}
}

func siteName(name, domain string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return domain
}
