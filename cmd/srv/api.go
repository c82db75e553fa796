package main

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/samplefinder/backend/internal/middleware"
	"github.com/samplefinder/backend/pkg/router"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}
	s.loadLogger()
	if err := s.loadClients(ct.Context); err != nil {
		return err
	}
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	s.logger.Infof("Starting server on port %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(*s.configs, s.logger)
	s.router.Use(middleware.AllowCors())
	s.router.Use(middleware.Logger(s.logger))

	// Mobile API
	router.POST(s.router, "/get-events-by-location", s.eventDomain.GetByLocation)
	router.POST(s.router, "/get-active-trivia", s.triviaDomain.GetActive)
	router.POST(s.router, "/submit-answer", s.triviaDomain.SubmitAnswer)
	router.POST(s.router, "/dismiss-trivia", s.triviaDomain.Dismiss)

	// Reporting API
	router.POST(s.router, "/get-client-stats", s.statisticDomain.GetClientStats)
	router.POST(s.router, "/get-user-report", s.statisticDomain.GetUserReport)

	// Admin API
	router.POST(s.router, "/update-user-status", s.userDomain.UpdateStatus)
}
