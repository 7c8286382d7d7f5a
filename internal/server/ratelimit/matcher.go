package ratelimit

import "strings"

// unlimited marks endpoints exempt from rate limiting.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves a request to its endpoint budget: liveness
// endpoints are unlimited, then exact path+method matches, then prefix
// matches for configured paths ending in "/". Returns nil when no
// configuration applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "GET" && (path == "/" || path == "/health") {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		if configs[i].Method == method &&
			strings.HasSuffix(configs[i].Path, "/") &&
			strings.HasPrefix(path, configs[i].Path) {
			return &configs[i]
		}
	}

	return nil
}
