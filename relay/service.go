package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/marcelsud/webhook-relay/relay/payload"
	"github.com/marcelsud/webhook-relay/routes"
	"github.com/rs/zerolog"
)

// UseCase defines the dispatch operation used by the HTTP layer
type UseCase interface {
	Dispatch(ctx context.Context, requestPath string, body []byte) (Result, error)
}

// AuditLogger persists the raw inbound body of a matched route
type AuditLogger interface {
	Log(ctx context.Context, route routes.Route, body []byte) error
}

// Recorder receives dispatch and audit observations
type Recorder interface {
	RecordDispatch(ctx context.Context, route routes.Route, outcome Outcome, status int, elapsed time.Duration)
	RecordAudit(ctx context.Context, route routes.Route, err error)
}

// Result describes how one inbound request was handled
type Result struct {
	DispatchID string
	Route      routes.Route // Zero value when no route matched
	Outcome    Outcome
	Status     int // Status for the inbound caller
}

/* Service is the request dispatcher
 * Uses pointer semantics as it's an API, not data
 */
type Service struct {
	routes    *routes.Table
	forwarder Forwarder
	audit     AuditLogger
	recorder  Recorder
	logger    zerolog.Logger
}

// NewService creates a dispatcher. audit and recorder may be nil.
func NewService(table *routes.Table, forwarder Forwarder, audit AuditLogger, recorder Recorder, logger zerolog.Logger) *Service {
	if audit == nil {
		audit = noopAudit{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		routes:    table,
		forwarder: forwarder,
		audit:     audit,
		recorder:  recorder,
		logger:    logger,
	}
}

// Dispatch matches requestPath, extracts the payload, writes the audit record
// when enabled and forwards the content. At most one forward is attempted.
func (s *Service) Dispatch(ctx context.Context, requestPath string, body []byte) (Result, error) {
	start := time.Now()
	result := Result{DispatchID: uuid.New().String()}
	logger := s.logger.With().
		Str("dispatch_id", result.DispatchID).
		Str("path", "/"+requestPath).
		Logger()

	route, ok := s.routes.Lookup(requestPath)
	if !ok {
		logger.Debug().Msg("no route matches path")
		return s.finish(ctx, result, start, ErrRouteNotFound)
	}
	result.Route = route
	logger = logger.With().Str("route", route.Name).Logger()

	content, err := payload.Extract(body)
	if err != nil {
		if errors.Is(err, payload.ErrInvalidJSON) {
			err = fmt.Errorf("%w: %w", ErrMalformedBody, err)
		} else {
			err = fmt.Errorf("extracting payload: %w", err)
		}
		logger.Info().Err(err).Msg("rejecting inbound body")
		return s.finish(ctx, result, start, err)
	}

	if route.LoggingEnabled {
		err := s.audit.Log(ctx, route, body)
		s.recorder.RecordAudit(ctx, route, err)
		if err != nil {
			logger.Warn().Err(err).Msg("writing audit record")
		}
	}

	// The forward is not cancelled when the inbound caller goes away
	status, err := s.forwarder.Forward(context.WithoutCancel(ctx), route.TargetURL, content)
	if err != nil {
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			err = &TransportError{URL: route.TargetURL, Err: err}
		}
		logger.Error().Err(err).Msg("forward failed")
		return s.finish(ctx, result, start, err)
	}

	result.Status = status
	logger.Info().Int("status", status).Msg("forwarded")
	return s.finish(ctx, result, start, nil)
}

func (s *Service) finish(ctx context.Context, result Result, start time.Time, err error) (Result, error) {
	result.Outcome = OutcomeOf(err)
	if err != nil {
		result.Status = StatusCode(err)
	}
	s.recorder.RecordDispatch(ctx, result.Route, result.Outcome, result.Status, time.Since(start))
	return result, err
}

type noopAudit struct{}

func (noopAudit) Log(context.Context, routes.Route, []byte) error { return nil }

type noopRecorder struct{}

func (noopRecorder) RecordDispatch(context.Context, routes.Route, Outcome, int, time.Duration) {}

func (noopRecorder) RecordAudit(context.Context, routes.Route, error) {}
