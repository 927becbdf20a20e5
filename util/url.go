package util

import (
	"errors"
	"net/url"
)

var (
	ErrNoScheme = errors.New("missing URL scheme")
	ErrNoHost   = errors.New("missing URL host")
)

// ParseAbsoluteURL parses s and requires both a scheme and a host, so that bare paths and "mailto:"-style opaque
// URLs are rejected.
func ParseAbsoluteURL(s string) (*url.URL, error) {
	parsedURL, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if parsedURL.Scheme == "" {
		return nil, ErrNoScheme
	}
	if parsedURL.Hostname() == "" {
		return nil, ErrNoHost
	}
	return parsedURL, nil
}
