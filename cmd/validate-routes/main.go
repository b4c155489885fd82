package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/webhook-relay/routes"
)

/* validate-routes - Standalone CLI tool to validate the relay file
 * Usage: go run cmd/validate-routes/main.go [config.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	routesFile := "config.yaml"
	if len(os.Args) > 1 {
		routesFile = os.Args[1]
	}

	fmt.Printf("Validating routes file: %s\n", routesFile)
	fmt.Println(strings.Repeat("-", 50))

	loader := routes.NewLoader()
	if err := loader.Load(routesFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table := loader.Table()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Server: %s\n", loader.Server().Addr())
	fmt.Printf("Loaded %d route(s):\n", table.Len())

	for i, route := range table.List() {
		fmt.Printf("\n%d. Route: %s\n", i+1, route.Name)
		fmt.Printf("   Path:    %s\n", route.Path)
		fmt.Printf("   Target:  %s\n", route.TargetURL)
		fmt.Printf("   Logging: %t\n", route.LoggingEnabled)
	}

	if shadowed := table.Shadowed(); len(shadowed) > 0 {
		fmt.Printf("\n⚠ %d route(s) can never match, an earlier route has the same path:\n", len(shadowed))
		for _, route := range shadowed {
			fmt.Printf("   - %s\n", route)
		}
	}

	fmt.Printf("\n✓ All routes are valid!\n")
	os.Exit(0)
}
