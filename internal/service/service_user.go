package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/store"
	"github.com/MKhiriev/go-pixel-analytics/internal/validators"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

type userService struct {
	users  store.UserRepository
	sites  store.SiteRepository
	events store.EventRepository

	validator  validators.Validator
	bcryptCost int
	now        func() time.Time

	logger *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	return &userService{
		users:      storages.UserRepository,
		sites:      storages.SiteRepository,
		events:     storages.EventRepository,
		validator:  validators.NewValidator(),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
		logger:     logger,
	}
}

// Status reports the plan of the user and how much of it is used. Events are
// counted over the owned sites since the first day of the current UTC month.
func (u *userService) Status(ctx context.Context, userID string) (models.UserStatus, error) {
	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return models.UserStatus{}, storeError(err, ErrUserNotFound, nil)
	}

	sites, err := u.sites.ListSitesByOwner(ctx, userID)
	if err != nil {
		return models.UserStatus{}, err
	}

	usage := models.Usage{Sites: len(sites)}
	if len(sites) > 0 {
		ids := make([]string, 0, len(sites))
		for _, s := range sites {
			ids = append(ids, s.ID)
		}

		now := u.now().UTC()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		usage.EventsThisMonth, err = u.events.CountEvents(ctx, ids, monthStart.UnixMilli(), now.UnixMilli()+1)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error counting monthly events")
			return models.UserStatus{}, fmt.Errorf("error counting monthly events: %w", err)
		}
	}

	limits := user.Plan.Limits()
	return models.UserStatus{
		User:               user.Public(),
		Plan:               user.Plan,
		Limits:             limits,
		Usage:              usage,
		SubscriptionStatus: user.SubscriptionStatus,
		OverQuota:          limits.EventsPerMonth != models.Unlimited && usage.EventsThisMonth > limits.EventsPerMonth,
	}, nil
}

func (u *userService) ChangePassword(ctx context.Context, userID string, change models.PasswordChange) error {
	if err := u.validator.Validate(ctx, change); err != nil {
		return validationError(err)
	}

	user, err := u.users.GetUser(ctx, userID)
	if err != nil {
		return storeError(err, ErrUserNotFound, nil)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(change.CurrentPassword)); err != nil {
		return ErrWrongCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(change.NewPassword), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err = u.users.UpdateUser(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("error updating password")
		return storeError(err, ErrUserNotFound, nil)
	}

	logger.FromContext(ctx).Info().Str("user_id", userID).Msg("password changed")
	return nil
}
