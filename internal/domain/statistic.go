package domain

import (
	"context"
	"sort"
	"strings"

	"github.com/samplefinder/backend/internal/entity"
	"github.com/samplefinder/backend/internal/model"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/errorx"
	"github.com/samplefinder/backend/pkg/xcontext"
	"github.com/samplefinder/backend/pkg/xredis"
	"golang.org/x/sync/errgroup"
)

type StatisticDomain interface {
	GetClientStats(ctx context.Context, req *model.GetClientStatsRequest) (*model.GetClientStatsResponse, error)
	GetUserReport(ctx context.Context, req *model.GetUserReportRequest) (*model.GetUserReportResponse, error)
}

type statisticDomain struct {
	eventRepo   repository.EventRepository
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserProfileRepository
	redisClient xredis.Client
}

func NewStatisticDomain(
	eventRepo repository.EventRepository,
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserProfileRepository,
	redisClient xredis.Client,
) StatisticDomain {
	return &statisticDomain{
		eventRepo:   eventRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

// GetClientStats computes per-client counters the store cannot compute
// natively: an in-memory hash-join over chunked fetches of events and
// check-in reviews, plus a full walk of the user collection for favorites.
func (d *statisticDomain) GetClientStats(
	ctx context.Context, req *model.GetClientStatsRequest,
) (*model.GetClientStatsResponse, error) {
	if len(req.ClientIDs) == 0 {
		return nil, errorx.New(errorx.BadRequest, "At least one client id is required")
	}

	configs := xcontext.Configs(ctx).Mobile

	cacheKey := statsCacheKey(req.ClientIDs)
	if d.redisClient != nil {
		cached := []model.ClientStats{}
		if err := d.redisClient.GetObj(ctx, cacheKey, &cached); err == nil {
			return &model.GetClientStatsResponse{Stats: cached}, nil
		} else if !xredis.Nil(err) {
			xcontext.Logger(ctx).Warnf("Cannot read the stats cache: %v", err)
		}
	}

	events, err := d.eventRepo.GetByClientIDs(
		ctx, req.ClientIDs, configs.MaxQueryValues, configs.MaxEventFetch)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get events of clients: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load statistics right now")
	}

	requested := map[string]bool{}
	for _, id := range req.ClientIDs {
		requested[id] = true
	}

	eventOwner := map[string]string{}
	eventCount := map[string]int{}
	eventIDs := make([]string, 0, len(events))
	for _, event := range events {
		clientID := event.ClientRef().ID
		if !requested[clientID] {
			continue
		}

		eventOwner[event.ID] = clientID
		eventCount[clientID]++
		eventIDs = append(eventIDs, event.ID)
	}

	var reviews []entity.Review
	favorites := map[string]int{}

	// Review fetch and the favorites walk are independent joins.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		reviews, err = d.reviewRepo.GetByEventIDs(
			egCtx, eventIDs, configs.MaxQueryValues, configs.MaxResponseFetch)
		return err
	})
	eg.Go(func() error {
		return d.walkProfiles(egCtx, func(profile entity.UserProfile) {
			for _, favorite := range profile.Favorites() {
				if requested[favorite] {
					favorites[favorite]++
				} else if owner, ok := eventOwner[favorite]; ok {
					favorites[owner]++
				}
			}
		})
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot aggregate client statistics: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load statistics right now")
	}

	checkIns := map[string]int{}
	points := map[string]int64{}
	for _, review := range reviews {
		owner, ok := eventOwner[review.EventID]
		if !ok {
			continue
		}

		checkIns[owner]++
		points[owner] += review.PointsEarned
	}

	stats := make([]model.ClientStats, 0, len(req.ClientIDs))
	for _, clientID := range req.ClientIDs {
		stats = append(stats, model.ClientStats{
			ClientID:          clientID,
			Events:            eventCount[clientID],
			CheckIns:          checkIns[clientID],
			PointsDistributed: points[clientID],
			Favorites:         favorites[clientID],
		})
	}

	if d.redisClient != nil {
		if err := d.redisClient.SetObj(ctx, cacheKey, stats, configs.StatsCacheTTL); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot write the stats cache: %v", err)
		}
	}

	return &model.GetClientStatsResponse{Stats: stats}, nil
}

// GetUserReport pages through the entire user collection so report totals
// match actual counts; the store's default listing is capped.
func (d *statisticDomain) GetUserReport(
	ctx context.Context, req *model.GetUserReportRequest,
) (*model.GetUserReportResponse, error) {
	configs := xcontext.Configs(ctx).Mobile

	var profiles []entity.UserProfile
	err := d.walkProfiles(ctx, func(profile entity.UserProfile) {
		profiles = append(profiles, profile)
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot walk user profiles: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load the report right now")
	}

	userIDs := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		userIDs = append(userIDs, profile.ID)
	}

	reviews, err := d.reviewRepo.GetByUserIDs(
		ctx, userIDs, configs.MaxQueryValues, configs.MaxResponseFetch)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reviews of users: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot load the report right now")
	}

	checkIns := map[string]int{}
	for _, review := range reviews {
		checkIns[review.UserID]++
	}

	rows := make([]model.UserReportRow, 0, len(profiles))
	for _, profile := range profiles {
		rows = append(rows, model.UserReportRow{
			UserID:    profile.ID,
			Name:      profile.Name,
			Points:    profile.Points,
			CheckIns:  checkIns[profile.ID],
			Favorites: len(profile.Favorites()),
		})
	}

	return &model.GetUserReportResponse{Rows: rows, Count: len(rows)}, nil
}

func (d *statisticDomain) walkProfiles(
	ctx context.Context, visit func(profile entity.UserProfile),
) error {
	pageSize := xcontext.Configs(ctx).Mobile.ProfilePageSize

	for offset := 0; ; offset += pageSize {
		page, err := d.userRepo.GetPage(ctx, offset, pageSize)
		if err != nil {
			return err
		}

		for _, profile := range page {
			visit(profile)
		}

		if len(page) < pageSize {
			return nil
		}
	}
}

func statsCacheKey(clientIDs []string) string {
	ids := make([]string, len(clientIDs))
	copy(ids, clientIDs)
	sort.Strings(ids)
	return "client_stats:" + strings.Join(ids, ",")
}
