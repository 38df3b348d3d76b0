package ratelimit

import "strings"

// unlimitedPaths are never rate limited
var unlimitedPaths = map[string]bool{
	"GET /":       true,
	"GET /health": true,
}

// MatchEndpoint returns the configuration for a request, or nil to use the default limit.
// Exact paths win; otherwise the longest "/"-terminated prefix for the method applies.
// Unlimited endpoints get a zero-limit configuration.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimitedPaths[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}
	return best
}
