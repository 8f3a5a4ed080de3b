//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/campushelp/helpdesk/internal/bootstrap"
	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
	"github.com/campushelp/helpdesk/internal/infra/config"
	"github.com/campushelp/helpdesk/internal/infra/netinfo"
	httpiface "github.com/campushelp/helpdesk/internal/interface/http"
	"github.com/campushelp/helpdesk/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideHelpdeskConfig,
		provideKnowledgeBase,
		provideStatsStore,
		provideResolver,
		helpdesk.NewService,
		wire.Bind(new(httpiface.BaseURLResolver), new(*netinfo.Resolver)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
