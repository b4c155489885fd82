package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/webhook-relay/routes"
	"github.com/redis/go-redis/v9"
)

/* Redis Streams implementation of relay.AuditLogger
 * One stream per route path, one entry per inbound body
 */

// Stream naming: audit:{route_path}
const streamPrefix = "audit"

type Logger struct {
	client *redis.Client
	now    func() time.Time
}

// NewLogger connects to Redis and verifies the connection
func NewLogger(addr, password string, db int) (*Logger, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return NewLoggerWithClient(client), nil
}

// NewLoggerWithClient wraps an existing client
func NewLoggerWithClient(client *redis.Client) *Logger {
	return &Logger{
		client: client,
		now:    time.Now,
	}
}

// Log appends the raw body to the route's stream
func (l *Logger) Log(ctx context.Context, route routes.Route, body []byte) error {
	_, err := l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(route),
		Values: map[string]interface{}{
			"route":       route.Name,
			"path":        route.Path,
			"body":        body,
			"captured_at": l.now().Unix(),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("adding audit record to stream: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (l *Logger) Close(ctx context.Context) error {
	return l.client.Close()
}

// StreamKey returns the stream name for a route
func StreamKey(route routes.Route) string {
	return fmt.Sprintf("%s:%s", streamPrefix, route.Path)
}
