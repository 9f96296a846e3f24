package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves a request path and method to its rate policy, or
// nil when only the default applies. Exact paths win over prefix rules, so
// "/ats-simulation" and "/ats-simulation/" (which covers the per-platform
// variants) can carry different limits. The health check is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && cfg.Method == method {
			return cfg
		}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}
