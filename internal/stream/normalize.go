// Package stream validates stream source URLs and probes HLS playlists.
package stream

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize validates a raw stream URL and returns its normalized form.
// Only http and https sources are accepted; anything else is rejected
// before it can reach the player.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("empty URL")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", trimmed, err)
	}

	switch u.Scheme {
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme %q (want http or https)", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", trimmed)
	}

	return u.String(), nil
}

// LooksLikeHLS reports whether a URL points at an HLS playlist. Used to
// classify sniffed media URLs; false positives only cost a failed probe.
func LooksLikeHLS(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.Contains(lower, ".m3u8") || strings.Contains(lower, "/hls/")
}
