package domain

import (
	"testing"

	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newEventDomainForTest(store *testutil.MockStore) EventDomain {
	return NewEventDomain(
		repository.NewEventRepository(store, "events"),
		repository.NewClientRepository(store, "clients"),
	)
}

func floatptr(f float64) *float64 { return &f }

func Test_eventDomain_GetByLocation(t *testing.T) {
	// Requests originate at Times Square; the fixture events are closest to
	// farthest in the order event1, event2, event3.
	timesSquare := model.GetEventsByLocationRequest{
		Latitude:  floatptr(40.7580),
		Longitude: floatptr(-73.9855),
	}

	t.Run("events sorted by ascending distance", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		req := timesSquare
		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Len(t, resp.Events, 3)
		require.Equal(t, testutil.Event1, resp.Events[0].ID)
		require.Equal(t, testutil.Event2, resp.Events[1].ID)
		require.Equal(t, testutil.Event3, resp.Events[2].ID)

		for i := 1; i < len(resp.Events); i++ {
			require.GreaterOrEqual(t, resp.Events[i].Distance, resp.Events[i-1].Distance)
		}
	})

	t.Run("unresolvable locations are excluded", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		store.Seed("events", "broken", map[string]any{
			"name":     "No Coordinates",
			"date":     "2099-06-04T00:00:00Z",
			"archived": false,
			"hidden":   false,
			"location": map[string]any{"address": "somewhere"},
		})
		d := newEventDomainForTest(store)

		req := timesSquare
		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Len(t, resp.Events, 3)
		require.Equal(t, 3, resp.Pagination.Total)
		for _, event := range resp.Events {
			require.NotEqual(t, "broken", event.ID)
		}
	})

	t.Run("pagination rounds total pages up", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		pageSize := 2
		req := timesSquare
		req.PageSize = &pageSize

		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Len(t, resp.Events, 2)
		require.Equal(t, 3, resp.Pagination.Total)
		require.Equal(t, 2, resp.Pagination.TotalPages)

		page := 2
		req.Page = &page
		resp, err = d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Len(t, resp.Events, 1)
		require.Equal(t, testutil.Event3, resp.Events[0].ID)
	})

	t.Run("out of range page returns empty with unchanged totals", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		page := 10
		req := timesSquare
		req.Page = &page

		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Empty(t, resp.Events)
		require.Equal(t, 3, resp.Pagination.Total)
		require.Equal(t, 1, resp.Pagination.TotalPages)
		require.Equal(t, 10, resp.Pagination.Page)
	})

	t.Run("archived and hidden events never appear", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		store.Seed("events", "archived", map[string]any{
			"name":     "Old Event",
			"date":     "2099-06-05T00:00:00Z",
			"archived": true,
			"hidden":   false,
			"location": []any{40.7580, -73.9855},
		})
		store.Seed("events", "hidden", map[string]any{
			"name":     "Private Event",
			"date":     "2099-06-06T00:00:00Z",
			"archived": false,
			"hidden":   true,
			"location": []any{40.7580, -73.9855},
		})
		d := newEventDomainForTest(store)

		req := timesSquare
		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Equal(t, 3, resp.Pagination.Total)
	})

	t.Run("a missing client degrades to nil instead of failing", func(t *testing.T) {
		ctx := testutil.MockContext()
		store := testutil.CreateFixtureStore()
		store.Seed("events", "orphan", map[string]any{
			"name":     "Orphan Event",
			"date":     "2099-06-07T00:00:00Z",
			"archived": false,
			"hidden":   false,
			"location": []any{40.7580, -73.9855},
			"client":   "missing-client",
		})
		d := newEventDomainForTest(store)

		req := timesSquare
		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.Len(t, resp.Events, 4)

		var found bool
		for _, event := range resp.Events {
			if event.ID == "orphan" {
				found = true
				require.Nil(t, event.Client)
			}
		}
		require.True(t, found)
	})

	t.Run("resolved clients are embedded", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		req := timesSquare
		resp, err := d.GetByLocation(ctx, &req)
		require.NoError(t, err)
		require.NotNil(t, resp.Events[0].Client)
		require.Equal(t, testutil.Client1, resp.Events[0].Client.ID)
		require.Equal(t, "First Street Coffee", resp.Events[0].Client.Name)
	})

	t.Run("missing coordinates are rejected", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		_, err := d.GetByLocation(ctx, &model.GetEventsByLocationRequest{})
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

		_, err = d.GetByLocation(ctx, &model.GetEventsByLocationRequest{
			Latitude: floatptr(40.7580),
		})
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	})

	t.Run("invalid coordinates are rejected", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		_, err := d.GetByLocation(ctx, &model.GetEventsByLocationRequest{
			Latitude:  floatptr(91),
			Longitude: floatptr(0),
		})
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

		_, err = d.GetByLocation(ctx, &model.GetEventsByLocationRequest{
			Latitude:  floatptr(0),
			Longitude: floatptr(-181),
		})
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	})

	t.Run("invalid pagination is rejected", func(t *testing.T) {
		ctx := testutil.MockContext()
		d := newEventDomainForTest(testutil.CreateFixtureStore())

		zero := 0
		req := timesSquare
		req.Page = &zero
		_, err := d.GetByLocation(ctx, &req)
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

		tooBig := 1000
		req = timesSquare
		req.PageSize = &tooBig
		_, err = d.GetByLocation(ctx, &req)
		require.Error(t, err)
		require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
	})
}
