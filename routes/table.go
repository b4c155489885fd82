package routes

import "fmt"

/* Table is the ordered, read-only set of routes served by the process
 * Built once at startup and shared by every request without locking
 */
type Table struct {
	routes []Route
}

// NewTable validates the routes and keeps them in the given order
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{routes: make([]Route, 0, len(routes))}
	for i, route := range routes {
		if err := route.Validate(); err != nil {
			return nil, fmt.Errorf("validating route %d: %w", i, err)
		}
		t.routes = append(t.routes, route)
	}
	return t, nil
}

// Lookup returns the first route whose path equals "/" + requestPath.
// requestPath is the segment captured after the mount point, without its leading slash.
func (t *Table) Lookup(requestPath string) (Route, bool) {
	key := "/" + requestPath
	for _, route := range t.routes {
		if route.Path == key {
			return route, true
		}
	}
	return Route{}, false
}

// List returns a copy of the routes in configuration order
func (t *Table) List() []Route {
	routes := make([]Route, len(t.routes))
	copy(routes, t.routes)
	return routes
}

// Len returns the number of configured routes
func (t *Table) Len() int {
	return len(t.routes)
}

// Shadowed returns the routes that Lookup can never return because an
// earlier route has the same path
func (t *Table) Shadowed() []Route {
	seen := make(map[string]struct{}, len(t.routes))
	var shadowed []Route
	for _, route := range t.routes {
		if _, ok := seen[route.Path]; ok {
			shadowed = append(shadowed, route)
			continue
		}
		seen[route.Path] = struct{}{}
	}
	return shadowed
}
