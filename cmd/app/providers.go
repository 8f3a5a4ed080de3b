package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
	"github.com/campushelp/helpdesk/internal/infra/config"
	"github.com/campushelp/helpdesk/internal/infra/kbfile"
	"github.com/campushelp/helpdesk/internal/infra/netinfo"
	"github.com/campushelp/helpdesk/internal/infra/statstore"
)

func provideHelpdeskConfig(cfg *config.Config) helpdesk.Config {
	return helpdesk.Config{
		SimilarityThreshold: cfg.Helpdesk.SimilarityThreshold,
		TopRecommendations:  cfg.Helpdesk.TopRecommendations,
	}
}

// provideKnowledgeBase loads the knowledge base once at startup. Failure here
// aborts the process; the helpdesk cannot serve without it.
func provideKnowledgeBase(cfg *config.Config, logger *slog.Logger) (*helpdesk.KnowledgeBase, error) {
	kb, err := kbfile.Load(cfg.Helpdesk.KnowledgeBasePath)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	logger.Info("knowledge base loaded",
		"path", cfg.Helpdesk.KnowledgeBasePath,
		"college", kb.College.Name,
		"departments", len(kb.Departments),
	)
	return kb, nil
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) helpdesk.Store {
	if cfg.Stats.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return statstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return statstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey trending store enabled", "addr", cfg.Stats.Valkey.Addr)
			return statstore.NewValkeyStore(client, "helpdesk")
		}
	}
	return statstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Stats.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Stats.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Stats.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideResolver(cfg *config.Config) *netinfo.Resolver {
	return netinfo.NewResolver(cfg.Tunnel.APIURL, cfg.Port())
}
