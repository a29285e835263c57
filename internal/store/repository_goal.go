package store

import (
	"context"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type goalRepository struct {
	goals collection[models.Goal]
}

// NewGoalRepository constructs a [GoalRepository] backed by blob.
func NewGoalRepository(blob BlobStore, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{
		goals: collection[models.Goal]{
			blob:      blob,
			name:      "goal",
			recordKey: goalKey,
			indexKey:  siteGoalsKey,
			parentOf:  func(g models.Goal) string { return g.SiteID },
		},
	}
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal models.Goal) error {
	return r.goals.create(ctx, goal.ID, goal, nil)
}

func (r *goalRepository) GetGoal(ctx context.Context, id string) (models.Goal, error) {
	return r.goals.get(ctx, id)
}

func (r *goalRepository) ListGoals(ctx context.Context, siteID string) ([]models.Goal, error) {
	return r.goals.list(ctx, siteID)
}

func (r *goalRepository) DeleteGoal(ctx context.Context, id string) error {
	return r.goals.delete(ctx, id, nil)
}
