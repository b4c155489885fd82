package chi

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/marcelsud/webhook-relay/routes"
)

/* HTTP layer DTOs for the admin API
 * Target URLs embed webhook tokens, so only the host is exposed
 */

// routeResponse represents a route in the API
type routeResponse struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	TargetHost string `json:"target_host"`
	Logging    bool   `json:"logging"`
	Shadowed   bool   `json:"shadowed"`
}

// getRoutes handles GET /v1/routes
func getRoutes(table *routes.Table) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all := table.List()
		seen := make(map[string]bool, len(all))

		responses := make([]routeResponse, 0, len(all))
		for _, route := range all {
			var host string
			if u, err := url.Parse(route.TargetURL); err == nil {
				host = u.Host
			}
			responses = append(responses, routeResponse{
				Name:       route.Name,
				Path:       route.Path,
				TargetHost: host,
				Logging:    route.LoggingEnabled,
				Shadowed:   seen[route.Path],
			})
			seen[route.Path] = true
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(responses); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// getHealth handles GET /health
func getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
