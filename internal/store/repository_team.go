package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

// teamRepository stores teams under "team:<id>". Every member, the owner
// included, has the team listed under "user_teams:<uid>".
type teamRepository struct {
	blob   BlobStore
	logger *logger.Logger
}

// NewTeamRepository constructs a [TeamRepository] backed by blob.
func NewTeamRepository(blob BlobStore, logger *logger.Logger) TeamRepository {
	logger.Debug().Msg("creating team repository")
	return &teamRepository{blob: blob, logger: logger}
}

func (r *teamRepository) CreateTeam(ctx context.Context, team models.Team) error {
	err := r.blob.Update(ctx, func(tx Tx) error {
		if err := tx.Put(teamKey(team.ID), team); err != nil {
			return err
		}
		for _, userID := range teamUserIDs(team) {
			if err := tx.IndexAdd(userTeamsKey(userID), team.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teamRepository.CreateTeam").Msg("error saving team")
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

func (r *teamRepository) GetTeam(ctx context.Context, id string) (models.Team, error) {
	var team models.Team
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		team, err = getRecord[models.Team](tx, teamKey(id))
		return err
	})
	return team, err
}

// UpdateTeam overwrites the team and brings the member index in line with
// the new member list.
func (r *teamRepository) UpdateTeam(ctx context.Context, team models.Team) error {
	err := r.blob.Update(ctx, func(tx Tx) error {
		old, err := getRecord[models.Team](tx, teamKey(team.ID))
		if err != nil {
			return err
		}

		current := make(map[string]struct{})
		for _, userID := range teamUserIDs(team) {
			current[userID] = struct{}{}
			if err = tx.IndexAdd(userTeamsKey(userID), team.ID); err != nil {
				return err
			}
		}
		for _, userID := range teamUserIDs(old) {
			if _, ok := current[userID]; ok {
				continue
			}
			if err = tx.IndexRemove(userTeamsKey(userID), team.ID); err != nil {
				return err
			}
		}

		return tx.Put(teamKey(team.ID), team)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*teamRepository.UpdateTeam").Msg("error updating team")
		return fmt.Errorf("update team: %w", err)
	}
	return err
}

func (r *teamRepository) ListTeamsByUser(ctx context.Context, userID string) ([]models.Team, error) {
	var teams []models.Team
	err := r.blob.View(ctx, func(tx Tx) error {
		var err error
		teams, err = listRecords[models.Team](tx, userTeamsKey(userID), teamKey)
		return err
	})
	return teams, err
}

func teamUserIDs(team models.Team) []string {
	ids := make([]string, 0, len(team.Members)+1)
	ids = append(ids, team.OwnerID)
	for _, m := range team.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}
