package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type annotationService struct {
	annotations store.AnnotationRepository
	access      AccessService

	validator validators.Validator

	logger *logger.Logger
}

func NewAnnotationService(storages *store.Storages, access AccessService, logger *logger.Logger) AnnotationService {
	return &annotationService{
		annotations: storages.AnnotationRepository,
		access:      access,
		validator:   validators.NewValidator(),
		logger:      logger,
	}
}

func (a *annotationService) CreateAnnotation(ctx context.Context, userID string, req models.AnnotationRequest) (models.Annotation, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Annotation{}, validationError(err)
	}

	site, err := a.access.AuthorizeSite(ctx, userID, req.SiteID, ActionSiteConfigure)
	if err != nil {
		return models.Annotation{}, err
	}

	annotation := models.Annotation{
		ID:        utils.NewID(),
		SiteID:    site.ID,
		Date:      req.Date,
		Text:      strings.TrimSpace(req.Text),
		CreatedBy: userID,
		CreatedAt: time.Now().UTC(),
	}
	if err = a.annotations.CreateAnnotation(ctx, annotation); err != nil {
		return models.Annotation{}, err
	}
	return annotation, nil
}

func (a *annotationService) ListAnnotations(ctx context.Context, userID, siteID string) ([]models.Annotation, error) {
	if _, err := a.access.AuthorizeSite(ctx, userID, siteID, ActionStatsRead); err != nil {
		return nil, err
	}
	return a.annotations.ListAnnotations(ctx, siteID)
}

func (a *annotationService) DeleteAnnotation(ctx context.Context, userID, annotationID string) error {
	annotation, err := a.annotations.GetAnnotation(ctx, annotationID)
	if err != nil {
		return storeError(err, ErrAnnotationNotFound, nil)
	}
	if _, err = a.access.AuthorizeSite(ctx, userID, annotation.SiteID, ActionSiteConfigure); err != nil {
		return err
	}
	return storeError(a.annotations.DeleteAnnotation(ctx, annotationID), ErrAnnotationNotFound, nil)
}
