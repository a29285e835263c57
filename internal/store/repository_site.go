package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// siteRepository is the blob store implementation of [SiteRepository].
// Sites are indexed by owner ("user_sites:<uid>") and, when shared, by team
// ("team_sites:<tid>").
type siteRepository struct {
	blob   BlobStore
	logger *logger.Logger
}

// NewSiteRepository constructs a [SiteRepository] backed by blob.
func NewSiteRepository(blob BlobStore, logger *logger.Logger) SiteRepository {
	logger.Debug().Msg("creating site repository")
	return &siteRepository{blob: blob, logger: logger}
}

func (r *siteRepository) CreateSite(ctx context.Context, site models.Site) error {
	err := r.blob.Update(ctx, func(tx Tx) error {
		owned, err := listRecords[models.Site](tx, userSitesKey(site.OwnerID), siteKey)
		if err != nil {
			return err
		}
		for _, s := range owned {
			if s.Domain == site.Domain {
				return ErrAlreadyExists
			}
		}

		if err = tx.Put(siteKey(site.ID), site); err != nil {
			return err
		}
		if err = tx.IndexAdd(userSitesKey(site.OwnerID), site.ID); err != nil {
			return err
		}
		if site.TeamID != "" {
			return tx.IndexAdd(teamSitesKey(site.TeamID), site.ID)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrAlreadyExists) {
		logger.FromContext(ctx).Err(err).Str("func", "*siteRepository.CreateSite").Msg("error saving site")
		return fmt.Errorf("create site: %w", err)
	}
	return err
}

func (r *siteRepository) GetSite(ctx context.Context, id string) (models.Site, error) {
	var site models.Site
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		site, err = getRecord[models.Site](tx, siteKey(id))
		return err
	})
	return site, err
}

// UpdateSite overwrites a site and moves it between team indexes when its
// team changed. The owner is immutable.
func (r *siteRepository) UpdateSite(ctx context.Context, site models.Site) error {
	return r.blob.Update(ctx, func(tx Tx) error {
		old, err := getRecord[models.Site](tx, siteKey(site.ID))
		if err != nil {
			return err
		}

		if old.Domain != site.Domain {
			owned, err := listRecords[models.Site](tx, userSitesKey(old.OwnerID), siteKey)
			if err != nil {
				return err
			}
			for _, s := range owned {
				if s.ID != site.ID && s.Domain == site.Domain {
					return ErrAlreadyExists
				}
			}
		}

		if old.TeamID != site.TeamID {
			if old.TeamID != "" {
				if err = tx.IndexRemove(teamSitesKey(old.TeamID), site.ID); err != nil {
					return err
				}
			}
			if site.TeamID != "" {
				if err = tx.IndexAdd(teamSitesKey(site.TeamID), site.ID); err != nil {
					return err
				}
			}
		}

		site.OwnerID = old.OwnerID
		return tx.Put(siteKey(site.ID), site)
	})
}

// DeleteSite removes the site, its index entries and every goal, webhook,
// alert and annotation attached to it.
func (r *siteRepository) DeleteSite(ctx context.Context, id string) error {
	err := r.blob.Update(ctx, func(tx Tx) error {
		site, err := getRecord[models.Site](tx, siteKey(id))
		if err != nil {
			return err
		}

		if err = deleteIndexed(tx, siteGoalsKey(id), goalKey); err != nil {
			return err
		}
		if err = deleteIndexed(tx, siteWebhooksKey(id), webhookKey); err != nil {
			return err
		}
		if err = deleteIndexed(tx, siteAnnotsKey(id), annotationKey); err != nil {
			return err
		}

		alertIDs, err := tx.Index(siteAlertsKey(id))
		if err != nil {
			return err
		}
		for _, alertID := range alertIDs {
			if err = tx.IndexRemove(alertsAllKey, alertID); err != nil {
				return err
			}
		}
		if err = deleteIndexed(tx, siteAlertsKey(id), alertKey); err != nil {
			return err
		}

		if err = tx.IndexRemove(userSitesKey(site.OwnerID), id); err != nil {
			return err
		}
		if site.TeamID != "" {
			if err = tx.IndexRemove(teamSitesKey(site.TeamID), id); err != nil {
				return err
			}
		}
		return tx.Delete(siteKey(id))
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*siteRepository.DeleteSite").Msg("error deleting site")
		return fmt.Errorf("delete site: %w", err)
	}
	return err
}

func (r *siteRepository) ListSitesByOwner(ctx context.Context, ownerID string) ([]models.Site, error) {
	var sites []models.Site
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		sites, err = listRecords[models.Site](tx, userSitesKey(ownerID), siteKey)
		return err
	})
	return sites, err
}

func (r *siteRepository) ListSitesByTeam(ctx context.Context, teamID string) ([]models.Site, error) {
	var sites []models.Site
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		sites, err = listRecords[models.Site](tx, teamSitesKey(teamID), siteKey)
		return err
	})
	return sites, err
}

// deleteIndexed deletes every record listed in the index and the index itself.
func deleteIndexed(tx Tx, indexKey string, recordKey func(string) string) error {
	ids, err := tx.Index(indexKey)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err = tx.Delete(recordKey(id)); err != nil {
			return err
		}
	}
	return tx.Delete(indexKey)
}
