package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/marcelsud/webhook-relay/routes"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRoute = routes.Route{Name: "ping", Path: "/ping", TargetURL: "https://hook.example/p", LoggingEnabled: true}

type auditRecord struct {
	Body       string
	CapturedAt time.Time
}

func newTestLogger(t *testing.T) (*Logger, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLoggerWithClient(client), server
}

// readRecords returns the entries of a route stream, oldest first
func readRecords(t *testing.T, logger *Logger, route routes.Route) []auditRecord {
	t.Helper()
	msgs, err := logger.client.XRangeN(context.Background(), StreamKey(route), "-", "+", 100).Result()
	require.NoError(t, err)

	records := make([]auditRecord, 0, len(msgs))
	for _, msg := range msgs {
		capturedAt, err := strconv.ParseInt(msg.Values["captured_at"].(string), 10, 64)
		require.NoError(t, err)
		records = append(records, auditRecord{
			Body:       msg.Values["body"].(string),
			CapturedAt: time.Unix(capturedAt, 0),
		})
	}
	return records
}

func TestLogger_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("appends verbatim body to the route stream", func(t *testing.T) {
		logger, _ := newTestLogger(t)
		captured := time.Unix(1700000000, 0)
		logger.now = func() time.Time { return captured }

		err := logger.Log(ctx, testRoute, []byte(`{"data":"ping"}`))
		require.NoError(t, err)

		records := readRecords(t, logger, testRoute)
		require.Len(t, records, 1)
		assert.Equal(t, `{"data":"ping"}`, records[0].Body)
		assert.Equal(t, captured, records[0].CapturedAt)
	})

	t.Run("every call adds one entry", func(t *testing.T) {
		logger, _ := newTestLogger(t)

		for i := 0; i < 3; i++ {
			require.NoError(t, logger.Log(ctx, testRoute, []byte(`{}`)))
		}

		assert.Len(t, readRecords(t, logger, testRoute), 3)
	})

	t.Run("routes use separate streams", func(t *testing.T) {
		logger, _ := newTestLogger(t)
		other := routes.Route{Name: "other", Path: "/other", TargetURL: "https://hook.example/o"}

		require.NoError(t, logger.Log(ctx, testRoute, []byte(`{"data":1}`)))
		require.NoError(t, logger.Log(ctx, other, []byte(`{"data":2}`)))

		records := readRecords(t, logger, other)
		require.Len(t, records, 1)
		assert.Equal(t, `{"data":2}`, records[0].Body)
	})

	t.Run("error - server unavailable", func(t *testing.T) {
		logger, server := newTestLogger(t)
		server.Close()

		err := logger.Log(ctx, testRoute, []byte(`{}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "adding audit record to stream")
	})
}

func TestStreamKey(t *testing.T) {
	assert.Equal(t, "audit:/team/ops", StreamKey(routes.Route{Path: "/team/ops"}))
}
