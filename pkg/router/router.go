package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/pkg/logger"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

type Router struct {
	Inner gin.IRouter

	cfg    config.Configs
	logger logger.Logger
}

func New(cfg config.Configs, logger logger.Logger) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Router{Inner: engine, cfg: cfg, logger: logger}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Use(middleware gin.HandlerFunc) {
	r.Inner.Use(middleware)
}

func (r *Router) Group(pattern string) *Router {
	return &Router{
		Inner:  r.Inner.Group(pattern),
		cfg:    r.cfg,
		logger: r.logger,
	}
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
