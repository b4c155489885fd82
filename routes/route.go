package routes

import (
	"fmt"
	"net/url"
	"strings"
)

/* Route represents one configured forwarding target
 * Maps an inbound path to the downstream webhook URL
 */
type Route struct {
	Name           string // Diagnostic label, may repeat
	Path           string // Match key, always starts with "/"
	TargetURL      string
	LoggingEnabled bool // Write an audit record of the raw inbound body
}

// Validate checks if the route configuration is valid
func (r Route) Validate() error {
	if r.Path == "" {
		return fmt.Errorf("path cannot be empty for route %q", r.Name)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("path must start with / for route %q (got %q)", r.Name, r.Path)
	}
	if r.TargetURL == "" {
		return fmt.Errorf("url cannot be empty for route %q", r.Name)
	}
	u, err := url.Parse(r.TargetURL)
	if err != nil {
		return fmt.Errorf("invalid url for route %q: %w", r.Name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be an absolute http(s) URL for route %q (got %q)", r.Name, r.TargetURL)
	}
	if u.Host == "" {
		return fmt.Errorf("url must have a host for route %q", r.Name)
	}
	return nil
}

// String returns a short description used in logs
func (r Route) String() string {
	if r.Name == "" {
		return r.Path
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.Path)
}
