package ratelimit

import (
	"net/http"
	"strings"
)

// MatchEndpoint resolves the rate limit configuration for a request path and
// method. An exact path match always wins; otherwise the first configured
// rule whose path ends in "/" and prefixes the request path applies (so
// "/pipeline/deals/" covers "/pipeline/deals/{id}"). The health check is
// exempt from limiting. Returns nil when only the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		// Limit 0 means unlimited; probes must never be throttled.
		return &EndpointConfig{Path: path, Method: method}
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if prefixMatch == nil && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			prefixMatch = config
		}
	}
	return prefixMatch
}
