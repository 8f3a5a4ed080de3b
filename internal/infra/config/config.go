package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Helpdesk HelpdeskConfig `yaml:"helpdesk"`
	Web      WebConfig      `yaml:"web"`
	Tunnel   TunnelConfig   `yaml:"tunnel"`
	Stats    StatsConfig    `yaml:"stats"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// HelpdeskConfig controls the query answering core.
type HelpdeskConfig struct {
	KnowledgeBasePath   string  `yaml:"knowledgeBasePath"`
	SimilarityThreshold float64 `yaml:"similarityThreshold"`
	TopRecommendations  int     `yaml:"topRecommendations"`
}

// WebConfig locates the chat page assets.
type WebConfig struct {
	TemplatesGlob string `yaml:"templatesGlob"`
	StaticDir     string `yaml:"staticDir"`
}

// TunnelConfig points at the local ngrok agent API used for public URL discovery.
type TunnelConfig struct {
	APIURL string `yaml:"apiUrl"`
}

// StatsConfig selects the trending-question counter backend.
type StatsConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the counter store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("KNOWLEDGE_BASE_PATH"); v != "" {
		cfg.Helpdesk.KnowledgeBasePath = v
	}
	if v := os.Getenv("HELPDESK_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Helpdesk.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("HELPDESK_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Helpdesk.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("TUNNEL_API_URL"); v != "" {
		cfg.Tunnel.APIURL = v
	}
	if v := os.Getenv("STATS_VALKEY_ENABLED"); v != "" {
		cfg.Stats.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("STATS_VALKEY_ADDR"); v != "" {
		cfg.Stats.Valkey.Addr = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Helpdesk: HelpdeskConfig{
			KnowledgeBasePath:   "data/knowledge_base.json",
			SimilarityThreshold: 0.65,
			TopRecommendations:  5,
		},
		Web: WebConfig{
			TemplatesGlob: "web/templates/*",
			StaticDir:     "web/static",
		},
		Tunnel: TunnelConfig{
			APIURL: "http://127.0.0.1:4040/api/tunnels",
		},
		Stats: StatsConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Helpdesk.KnowledgeBasePath == "" {
		return errors.New("helpdesk.knowledgeBasePath cannot be empty")
	}
	if c.Helpdesk.SimilarityThreshold <= 0 || c.Helpdesk.SimilarityThreshold >= 1 {
		return errors.New("helpdesk.similarityThreshold must be within (0,1)")
	}
	if c.Helpdesk.TopRecommendations < 0 {
		return errors.New("helpdesk.topRecommendations cannot be negative")
	}
	if c.Stats.Valkey.Enabled && strings.TrimSpace(c.Stats.Valkey.Addr) == "" {
		return errors.New("stats.valkey.addr cannot be empty when the valkey store is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

// Port extracts the listen port from the HTTP address, used when building the
// advertised LAN URL.
func (c *Config) Port() int {
	_, portStr, err := net.SplitHostPort(c.HTTP.Address)
	if err != nil {
		return 80
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 80
	}
	return port
}
