package app

import "strings"

// originHost strips the scheme from an Origin header value, leaving
// "host[:port]". A value without a scheme comes back unchanged, so a
// malformed origin can only ever match an identical pattern.
func originHost(origin string) string {
	if _, rest, ok := strings.Cut(origin, "://"); ok {
		return strings.TrimSuffix(rest, "/")
	}
	return origin
}

// originMatches reports whether host satisfies an allowed-origin pattern.
// A "*." prefix covers any subdomain, a ":*" suffix covers any port.
func originMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	}
	return false
}
