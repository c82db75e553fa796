// Package xcontext carries request-scoped collaborators (configs, logger, http
// client, authenticated user) through a plain context.Context so every layer
// stays compatible with libraries expecting the standard interface.
package xcontext

import (
	"context"
	"net/http"

	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/logger"
)

type (
	configsKey       struct{}
	loggerKey        struct{}
	httpClientKey    struct{}
	requestUserIDKey struct{}
)

func WithConfigs(ctx context.Context, configs config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, configs)
}

func Configs(ctx context.Context) config.Configs {
	if configs, ok := ctx.Value(configsKey{}).(config.Configs); ok {
		return configs
	}

	return config.Configs{}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return logger.NewLogger(logger.SILENCE)
}

func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, client)
}

func HTTPClient(ctx context.Context) *http.Client {
	if client, ok := ctx.Value(httpClientKey{}).(*http.Client); ok {
		return client
	}

	return http.DefaultClient
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	if id, ok := ctx.Value(requestUserIDKey{}).(string); ok {
		return id
	}

	return ""
}
