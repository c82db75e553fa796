package domain

import (
	"context"
	"errors"

	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/identity"
	"github.com/samplefinder/backend/pkg/saga"
	"github.com/samplefinder/backend/pkg/xcontext"
)

type UserDomain interface {
	UpdateStatus(ctx context.Context, req *model.UpdateUserStatusRequest) (*model.UpdateUserStatusResponse, error)
}

type userDomain struct {
	userRepo         repository.UserProfileRepository
	identityProvider identity.Provider
}

func NewUserDomain(
	userRepo repository.UserProfileRepository,
	identityProvider identity.Provider,
) UserDomain {
	return &userDomain{userRepo: userRepo, identityProvider: identityProvider}
}

// UpdateStatus blocks or unblocks a user in both systems of record. The
// identity-status change runs first; if the profile write then fails, the
// identity change is compensated so the two never stay out of sync in the
// direction that locks a user out silently.
func (d *userDomain) UpdateStatus(
	ctx context.Context, req *model.UpdateUserStatusRequest,
) (*model.UpdateUserStatusResponse, error) {
	if req.UserID == "" {
		return nil, errorx.New(errorx.BadRequest, "User id is required")
	}

	if req.Blocked == nil {
		return nil, errorx.New(errorx.BadRequest, "Blocked flag is required")
	}

	profile, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errorx.New(errorx.NotFound, "Not found user profile")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user profile: %v", err)
		return nil, errorx.Unknown
	}

	if profile.AccountID == "" {
		return nil, errorx.New(errorx.PreconditionFailed, "User has no linked account")
	}

	account, err := d.identityProvider.Get(ctx, profile.AccountID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found account")
		}

		xcontext.Logger(ctx).Errorf("Cannot get account %s: %v", profile.AccountID, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot update user status right now")
	}

	blocked := *req.Blocked
	previousActive := account.Active

	err = saga.New(
		saga.Step{
			Name: "identity-status",
			Action: func(ctx context.Context) error {
				return d.identityProvider.UpdateStatus(ctx, account.ID, !blocked)
			},
			Compensate: func(ctx context.Context) error {
				return d.identityProvider.UpdateStatus(ctx, account.ID, previousActive)
			},
		},
		saga.Step{
			Name: "profile-blocked",
			Action: func(ctx context.Context) error {
				return d.userRepo.SetBlocked(ctx, profile.ID, blocked)
			},
		},
	).Execute(ctx)
	if err != nil {
		return nil, errorx.New(errorx.Unavailable, "Cannot update user status right now")
	}

	return &model.UpdateUserStatusResponse{}, nil
}
