package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/samplefinder/backend/config"
	"github.com/samplefinder/backend/internal/domain"
	"github.com/samplefinder/backend/internal/repository"
	"github.com/samplefinder/backend/pkg/docstore"
	"github.com/samplefinder/backend/pkg/identity"
	"github.com/samplefinder/backend/pkg/logger"
	"github.com/samplefinder/backend/pkg/router"
	"github.com/samplefinder/backend/pkg/xcontext"
	"github.com/samplefinder/backend/pkg/xredis"
)

type srv struct {
	app *cli.App

	configs *config.Configs
	logger  logger.Logger

	store            docstore.Store
	identityProvider identity.Provider
	redisClient      xredis.Client

	eventRepo    repository.EventRepository
	clientRepo   repository.ClientRepository
	triviaRepo   repository.TriviaQuestionRepository
	responseRepo repository.TriviaResponseRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserProfileRepository

	eventDomain     domain.EventDomain
	triviaDomain    domain.TriviaDomain
	statisticDomain domain.StatisticDomain
	userDomain      domain.UserDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) error {
	configs, err := config.Load(ct.String("config"))
	if err != nil {
		return err
	}

	s.configs = configs
	return nil
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "dev" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadClients(ctx context.Context) error {
	s.store = docstore.NewHTTPStore(s.configs.DocStore)
	s.identityProvider = identity.NewHTTPProvider(s.configs.Identity)

	if s.configs.Redis.Addr != "" {
		redisClient, err := xredis.NewClient(xcontext.WithConfigs(ctx, *s.configs))
		if err != nil {
			return err
		}
		s.redisClient = redisClient
	}

	return nil
}

func (s *srv) loadRepos() {
	collections := s.configs.DocStore.Collections

	s.eventRepo = repository.NewEventRepository(s.store, collections.Events)
	s.clientRepo = repository.NewClientRepository(s.store, collections.Clients)
	s.triviaRepo = repository.NewTriviaQuestionRepository(s.store, collections.Trivia)
	s.responseRepo = repository.NewTriviaResponseRepository(s.store, collections.TriviaResponses)
	s.reviewRepo = repository.NewReviewRepository(s.store, collections.Reviews)
	s.userRepo = repository.NewUserProfileRepository(s.store, collections.Users)
}

func (s *srv) loadDomains() {
	s.eventDomain = domain.NewEventDomain(s.eventRepo, s.clientRepo)
	s.triviaDomain = domain.NewTriviaDomain(s.triviaRepo, s.responseRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(
		s.eventRepo, s.reviewRepo, s.userRepo, s.redisClient)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.identityProvider)
}
