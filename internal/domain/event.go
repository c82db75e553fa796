package domain

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/math"
	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/geoutil"
	"github.com/samplefinder/backend/pkg/xcontext"
)

type EventDomain interface {
	GetByLocation(ctx context.Context, req *model.GetEventsByLocationRequest) (*model.GetEventsByLocationResponse, error)
}

type eventDomain struct {
	eventRepo  repository.EventRepository
	clientRepo repository.ClientRepository
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	clientRepo repository.ClientRepository,
) EventDomain {
	return &eventDomain{eventRepo: eventRepo, clientRepo: clientRepo}
}

type rankedEvent struct {
	event    entity.Event
	location entity.Location
	distance float64
	client   *model.ClientInfo
}

// GetByLocation ranks upcoming events by great-circle distance from the
// requesting user. The store cannot rank by distance, so the full candidate
// set is enriched, sorted, and paginated application-side; a store-level
// offset would paginate the wrong ordering.
func (d *eventDomain) GetByLocation(
	ctx context.Context, req *model.GetEventsByLocationRequest,
) (*model.GetEventsByLocationResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errorx.New(errorx.BadRequest, "Latitude and longitude are required")
	}

	lat, lon := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 {
		return nil, errorx.New(errorx.BadRequest, "Latitude must be between -90 and 90")
	}

	if lon < -180 || lon > 180 {
		return nil, errorx.New(errorx.BadRequest, "Longitude must be between -180 and 180")
	}

	configs := xcontext.Configs(ctx).Mobile

	page := 1
	if req.Page != nil {
		if *req.Page < 1 {
			return nil, errorx.New(errorx.BadRequest, "Page must be a positive integer")
		}
		page = *req.Page
	}

	pageSize := configs.DefaultPageSize
	if req.PageSize != nil {
		if *req.PageSize < 1 || *req.PageSize > configs.MaxPageSize {
			return nil, errorx.New(errorx.BadRequest,
				"Page size must be between 1 and %d", configs.MaxPageSize)
		}
		pageSize = *req.PageSize
	}

	candidates, err := d.eventRepo.GetUpcoming(ctx, time.Now(), configs.MaxEventFetch)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get upcoming events: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load events right now")
	}

	// Client lookups are deduplicated per request; a failed lookup degrades
	// to a nil client instead of failing the whole response.
	resolvedClients := map[string]*model.ClientInfo{}

	ranked := make([]rankedEvent, 0, len(candidates))
	for _, event := range candidates {
		location, ok := event.Location()
		if !ok {
			// No resolvable coordinate pair, never distance-rankable.
			continue
		}

		ranked = append(ranked, rankedEvent{
			event:    event,
			location: location,
			distance: geoutil.Haversine(lat, lon, location.Lat, location.Lon),
			client:   d.resolveClient(ctx, event.ClientRef(), resolvedClients),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	total := len(ranked)
	totalPages := (total + pageSize - 1) / pageSize

	begin := math.MinInt((page-1)*pageSize, total)
	end := math.MinInt(begin+pageSize, total)

	events := make([]model.Event, 0, end-begin)
	for _, r := range ranked[begin:end] {
		events = append(events, model.Event{
			ID:        r.event.ID,
			Name:      r.event.Name,
			Date:      r.event.Date,
			StartTime: r.event.StartTime,
			EndTime:   r.event.EndTime,
			Address:   r.event.Address,
			City:      r.event.City,
			State:     r.event.State,
			Zip:       r.event.Zip,
			Latitude:  r.location.Lat,
			Longitude: r.location.Lon,
			Distance:  r.distance,
			Client:    r.client,
		})
	}

	return &model.GetEventsByLocationResponse{
		Events: events,
		Pagination: model.Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (d *eventDomain) resolveClient(
	ctx context.Context, ref entity.ClientRef, resolved map[string]*model.ClientInfo,
) *model.ClientInfo {
	if ref.Empty() {
		return nil
	}

	if ref.Embedded != nil {
		return &model.ClientInfo{
			ID:   ref.Embedded.ID,
			Name: ref.Embedded.Name,
			Logo: ref.Embedded.Logo,
		}
	}

	if info, ok := resolved[ref.ID]; ok {
		return info
	}

	client, err := d.clientRepo.GetByID(ctx, ref.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot resolve client %s: %v", ref.ID, err)
		resolved[ref.ID] = nil
		return nil
	}

	info := &model.ClientInfo{ID: client.ID, Name: client.Name, Logo: client.Logo}
	resolved[ref.ID] = info
	return info
}
