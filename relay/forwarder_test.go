package relay_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/marcelsud/webhook-relay/relay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Method      string
	ContentType string
	Body        string
}

func newDownstream(t *testing.T, status int) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		received []capturedRequest
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		received = append(received, capturedRequest{
			Method:      r.Method,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		mu.Unlock()
		w.WriteHeader(status)
		w.Write([]byte(`{"ignored":true}`))
	}))
	t.Cleanup(server.Close)

	return server, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), received...)
	}
}

func TestHTTPForwarder_Forward(t *testing.T) {
	ctx := context.Background()

	t.Run("posts content document with JSON content type", func(t *testing.T) {
		server, received := newDownstream(t, http.StatusNoContent)
		forwarder := relay.NewHTTPForwarder()

		status, err := forwarder.Forward(ctx, server.URL, `{"msg":"hi"}`)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, status)
		require.Len(t, received(), 1)
		req := received()[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "application/json", req.ContentType)
		assert.Equal(t, `{"content":"{\"msg\":\"hi\"}"}`, req.Body)
	})

	t.Run("content is not HTML escaped", func(t *testing.T) {
		server, received := newDownstream(t, http.StatusOK)

		_, err := relay.NewHTTPForwarder().Forward(ctx, server.URL, "<@123> & co")

		require.NoError(t, err)
		require.Len(t, received(), 1)
		assert.Equal(t, `{"content":"<@123> & co"}`, received()[0].Body)
	})

	t.Run("downstream status returned unchanged", func(t *testing.T) {
		for _, code := range []int{http.StatusOK, http.StatusBadRequest, http.StatusServiceUnavailable} {
			server, received := newDownstream(t, code)
			forwarder := relay.NewHTTPForwarder()

			status, err := forwarder.Forward(ctx, server.URL, "ping")

			require.NoError(t, err)
			assert.Equal(t, code, status)
			assert.Len(t, received(), 1, "no retries on status %d", code)
		}
	})

	t.Run("connection refused is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		status, err := relay.NewHTTPForwarder().Forward(ctx, url, "ping")

		var transportErr *relay.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, url, transportErr.URL)
		assert.Zero(t, status)
	})

	t.Run("invalid URL is a transport error", func(t *testing.T) {
		_, err := relay.NewHTTPForwarder().Forward(ctx, "http://[::1", "ping")

		var transportErr *relay.TransportError
		require.ErrorAs(t, err, &transportErr)
	})
}
