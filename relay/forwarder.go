package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Message is the fixed shape sent downstream
type Message struct {
	Content string `json:"content"`
}

// Forwarder sends extracted content to a target URL
type Forwarder interface {
	/* Forward makes exactly one POST attempt
	 * Returns the downstream status code unchanged, or a *TransportError
	 */
	Forward(ctx context.Context, targetURL, content string) (int, error)
}

// HTTPForwarder posts Message documents over HTTP
type HTTPForwarder struct {
	client *http.Client
}

// NewHTTPForwarder creates a forwarder with an instrumented default transport.
// No timeout is set beyond the transport defaults.
func NewHTTPForwarder() *HTTPForwarder {
	return NewHTTPForwarderWithClient(&http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

// NewHTTPForwarderWithClient creates a forwarder around an existing client
func NewHTTPForwarderWithClient(client *http.Client) *HTTPForwarder {
	return &HTTPForwarder{client: client}
}

// Forward posts {"content": content} to targetURL
func (f *HTTPForwarder) Forward(ctx context.Context, targetURL, content string) (int, error) {
	body, err := encodeMessage(Message{Content: content})
	if err != nil {
		return 0, fmt.Errorf("marshaling message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return 0, &TransportError{URL: targetURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return 0, &TransportError{URL: targetURL, Err: err}
	}
	defer res.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, res.Body)

	return res.StatusCode, nil
}

// encodeMessage marshals msg without HTML escaping and without the trailing newline
func encodeMessage(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
