package domain

import (
	"errors"
	"testing"

	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/identity"
	"github.com/samplefinder/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func boolptr(b bool) *bool { return &b }

func newUserDomainForTest(
	store *testutil.MockStore, provider *testutil.MockIdentityProvider,
) UserDomain {
	return NewUserDomain(repository.NewUserProfileRepository(store, "users"), provider)
}

func Test_userDomain_UpdateStatus(t *testing.T) {
	t.Run("blocking deactivates the account and flags the profile", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		provider := testutil.NewMockIdentityProvider()
		provider.Accounts[testutil.Account1] = &identity.Account{
			ID:     testutil.Account1,
			Active: true,
		}
		d := newUserDomainForTest(store, provider)

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  testutil.User1,
			Blocked: boolptr(true),
		})
		require.NoError(t, err)
		require.False(t, provider.Accounts[testutil.Account1].Active)

		profile, err := repository.NewUserProfileRepository(store, "users").
			GetByID(ctx, testutil.User1)
		require.NoError(t, err)
		require.True(t, profile.Blocked)
	})

	t.Run("unblocking reactivates the account", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		provider := testutil.NewMockIdentityProvider()
		provider.Accounts[testutil.Account1] = &identity.Account{
			ID:     testutil.Account1,
			Active: false,
		}
		d := newUserDomainForTest(store, provider)

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  testutil.User1,
			Blocked: boolptr(false),
		})
		require.NoError(t, err)
		require.True(t, provider.Accounts[testutil.Account1].Active)
	})

	t.Run("a failed profile write reverts the identity status", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		store.FailUpdates["users"] = errors.New("write denied")
		provider := testutil.NewMockIdentityProvider()
		provider.Accounts[testutil.Account1] = &identity.Account{
			ID:     testutil.Account1,
			Active: true,
		}
		d := newUserDomainForTest(store, provider)

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  testutil.User1,
			Blocked: boolptr(true),
		})
		require.Error(t, err)
		require.Equal(t, errorx.Unavailable, err.(errorx.Error).Code)

		// Deactivated, then restored by the compensation.
		require.Equal(t, []testutil.StatusCall{
			{ID: testutil.Account1, Active: false},
			{ID: testutil.Account1, Active: true},
		}, provider.StatusCalls)
		require.True(t, provider.Accounts[testutil.Account1].Active)
	})

	t.Run("a profile without a linked account is rejected", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newUserDomainForTest(testutil.CreateFixtureStore(), testutil.NewMockIdentityProvider())

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  testutil.User2,
			Blocked: boolptr(true),
		})
		require.Error(t, err)
		require.Equal(t, errorx.PreconditionFailed, err.(errorx.Error).Code)
	})

	t.Run("an unknown profile is not found", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newUserDomainForTest(testutil.CreateFixtureStore(), testutil.NewMockIdentityProvider())

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  "missing",
			Blocked: boolptr(true),
		})
		require.Error(t, err)
		require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
	})

	t.Run("a profile whose account is gone is not found", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newUserDomainForTest(testutil.CreateFixtureStore(), testutil.NewMockIdentityProvider())

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{
			UserID:  testutil.User1,
			Blocked: boolptr(true),
		})
		require.Error(t, err)
		require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
	})

	t.Run("the blocked flag is required", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newUserDomainForTest(testutil.CreateFixtureStore(), testutil.NewMockIdentityProvider())

		_, err := d.UpdateStatus(ctx, &model.UpdateUserStatusRequest{UserID: testutil.User1})
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	})
}
