package store

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type annotationRepository struct {
	annotations collection[models.Annotation]
}

// NewAnnotationRepository constructs an [AnnotationRepository] backed by blob.
func NewAnnotationRepository(blob BlobStore, logger *logger.Logger) AnnotationRepository {
	logger.Debug().Msg("creating annotation repository")
	return &annotationRepository{
		annotations: collection[models.Annotation]{
			blob:      blob,
			name:      "annotation",
			recordKey: annotationKey,
			indexKey:  siteAnnotsKey,
			parentOf:  func(a models.Annotation) string { return a.SiteID },
		},
	}
}

func (r *annotationRepository) CreateAnnotation(ctx context.Context, annotation models.Annotation) error {
	return r.annotations.create(ctx, annotation.ID, annotation, nil)
}

func (r *annotationRepository) GetAnnotation(ctx context.Context, id string) (models.Annotation, error) {
	return r.annotations.get(ctx, id)
}

func (r *annotationRepository) ListAnnotations(ctx context.Context, siteID string) ([]models.Annotation, error) {
	return r.annotations.list(ctx, siteID)
}

func (r *annotationRepository) DeleteAnnotation(ctx context.Context, id string) error {
	return r.annotations.delete(ctx, id, nil)
}
