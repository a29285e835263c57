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

type teamService struct {
	teams  store.TeamRepository
	users  store.UserRepository
	access AccessService

	validator validators.Validator

	logger *logger.Logger
}

func NewTeamService(storages *store.Storages, access AccessService, logger *logger.Logger) TeamService {
	return &teamService{
		teams:     storages.TeamRepository,
		users:     storages.UserRepository,
		access:    access,
		validator: validators.NewValidator(),
		logger:    logger,
	}
}

func (t *teamService) CreateTeam(ctx context.Context, userID string, req models.TeamRequest) (models.Team, error) {
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.Team{}, validationError(err)
	}

	team := models.Team{
		ID:        utils.NewID(),
		Name:      strings.TrimSpace(req.Name),
		OwnerID:   userID,
		Members:   []models.TeamMember{},
		CreatedAt: time.Now().UTC(),
	}
	if err := t.teams.CreateTeam(ctx, team); err != nil {
		return models.Team{}, err
	}

	logger.FromContext(ctx).Info().Str("team_id", team.ID).Str("owner_id", userID).Msg("team created")
	return team, nil
}

func (t *teamService) ListTeams(ctx context.Context, userID string) ([]models.Team, error) {
	return t.teams.ListTeamsByUser(ctx, userID)
}

func (t *teamService) GetTeam(ctx context.Context, userID, teamID string) (models.Team, error) {
	return t.access.AuthorizeTeam(ctx, userID, teamID, ActionTeamRead)
}

// AddMember adds a registered user to the team. The number of members is
// limited by the plan of the team owner.
func (t *teamService) AddMember(ctx context.Context, userID, teamID string, req models.MemberRequest) (models.Team, error) {
	req.Email = normalizeEmail(req.Email)
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.Team{}, validationError(err)
	}

	team, err := t.access.AuthorizeTeam(ctx, userID, teamID, ActionTeamManage)
	if err != nil {
		return models.Team{}, err
	}

	member, err := t.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return models.Team{}, storeError(err, ErrUserNotFound, nil)
	}
	if _, ok := team.RoleOf(member.ID); ok {
		return models.Team{}, ErrMemberExists
	}

	owner, err := t.users.GetUser(ctx, team.OwnerID)
	if err != nil {
		return models.Team{}, storeError(err, ErrUserNotFound, nil)
	}
	limit := owner.Plan.Limits().TeamMembers
	if !models.Allows(limit, len(team.Members)) {
		return models.Team{}, fmt.Errorf("%w: %d team members on the %s plan", ErrPlanLimit, limit, owner.Plan)
	}

	team.Members = append(team.Members, models.TeamMember{
		UserID:  member.ID,
		Email:   member.Email,
		Role:    req.Role,
		AddedAt: time.Now().UTC(),
	})
	if err = t.teams.UpdateTeam(ctx, team); err != nil {
		return models.Team{}, storeError(err, ErrTeamNotFound, nil)
	}

	logger.FromContext(ctx).Info().
		Str("team_id", teamID).
		Str("member_id", member.ID).
		Str("role", string(req.Role)).
		Msg("team member added")
	return team, nil
}

func (t *teamService) RemoveMember(ctx context.Context, userID, teamID, memberID string) (models.Team, error) {
	action := ActionTeamManage
	if memberID == userID {
		action = ActionTeamRead
	}

	team, err := t.access.AuthorizeTeam(ctx, userID, teamID, action)
	if err != nil {
		return models.Team{}, err
	}
	if memberID == team.OwnerID {
		return models.Team{}, ErrOwnerRemoval
	}

	idx := -1
	for i, m := range team.Members {
		if m.UserID == memberID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Team{}, ErrMemberNotFound
	}
	team.Members = append(team.Members[:idx], team.Members[idx+1:]...)

	if err = t.teams.UpdateTeam(ctx, team); err != nil {
		return models.Team{}, storeError(err, ErrTeamNotFound, nil)
	}
	return team, nil
}
