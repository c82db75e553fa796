package testutil

import (
	"context"
	"time"

	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/logger"
	"github.com/samplefinder/backend/pkg/xcontext"
)

func MockContext() context.Context {
	return MockContextWithConfigs(MockConfigs())
}

func MockContextWithConfigs(configs config.Configs) context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, configs)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	return ctx
}

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "test",
		DocStore: config.DocStoreConfigs{
			DatabaseID: "default",
			Collections: config.CollectionConfigs{
				Events:          "events",
				Clients:         "clients",
				Trivia:          "trivia",
				TriviaResponses: "trivia_responses",
				Reviews:         "reviews",
				Users:           "users",
			},
		},
		Mobile: config.MobileConfigs{
			DefaultPageSize:  10,
			MaxPageSize:      100,
			MaxEventFetch:    100,
			MaxTriviaFetch:   25,
			MaxResponseFetch: 100,
			MaxQueryValues:   25,
			ProfilePageSize:  50,
			StatsCacheTTL:    time.Minute,
		},
	}
}
