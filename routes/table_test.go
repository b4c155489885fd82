package routes_test

import (
	"testing"

	"github.com/marcelsud/webhook-relay/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Lookup(t *testing.T) {
	table, err := routes.NewTable(
		routes.Route{Name: "first", Path: "/alerts", TargetURL: "https://hook.example/1"},
		routes.Route{Name: "nested", Path: "/team/ops", TargetURL: "https://hook.example/2"},
		routes.Route{Name: "second", Path: "/alerts", TargetURL: "https://hook.example/3"},
	)
	require.NoError(t, err)

	t.Run("match", func(t *testing.T) {
		route, ok := table.Lookup("team/ops")
		require.True(t, ok)
		assert.Equal(t, "nested", route.Name)
	})

	t.Run("first match wins on duplicate paths", func(t *testing.T) {
		route, ok := table.Lookup("alerts")
		require.True(t, ok)
		assert.Equal(t, "first", route.Name)
		assert.Equal(t, "https://hook.example/1", route.TargetURL)
	})

	t.Run("key includes the leading slash", func(t *testing.T) {
		_, ok := table.Lookup("/alerts")
		assert.False(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := table.Lookup("unknown")
		assert.False(t, ok)
	})

	t.Run("empty path does not match", func(t *testing.T) {
		_, ok := table.Lookup("")
		assert.False(t, ok)
	})
}

func TestTable_Shadowed(t *testing.T) {
	table, err := routes.NewTable(
		routes.Route{Name: "a", Path: "/x", TargetURL: "https://hook.example/1"},
		routes.Route{Name: "b", Path: "/y", TargetURL: "https://hook.example/2"},
		routes.Route{Name: "c", Path: "/x", TargetURL: "https://hook.example/3"},
	)
	require.NoError(t, err)

	shadowed := table.Shadowed()

	require.Len(t, shadowed, 1)
	assert.Equal(t, "c", shadowed[0].Name)
}

func TestTable_ListReturnsCopy(t *testing.T) {
	table, err := routes.NewTable(routes.Route{Path: "/x", TargetURL: "https://hook.example/1"})
	require.NoError(t, err)

	list := table.List()
	list[0].TargetURL = "https://evil.example"

	route, ok := table.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "https://hook.example/1", route.TargetURL)
}

func TestNewTable_InvalidRoute(t *testing.T) {
	_, err := routes.NewTable(routes.Route{Name: "bad", Path: "/x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating route 0")
}
