// Package generator asks a hosted language model for output constrained to a declared
// schema and returns only fully validated results.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"PATHFINDER_BACK-END/internal/config"
	"PATHFINDER_BACK-END/internal/models"
	"PATHFINDER_BACK-END/internal/planner"
)

var (
	// ErrNotConfigured means the credential is missing or still a placeholder
	ErrNotConfigured = errors.New("generator API key is missing or a placeholder")
	// ErrGeneration covers provider failures, timeouts and schema violations
	ErrGeneration = errors.New("generation failed")
)

// CredentialUsable reports whether key looks like a real credential
func CredentialUsable(key string) bool {
	return !config.IsPlaceholderKey(key)
}

// Provider sends a prompt with an output schema to a hosted model and returns the raw JSON text
type Provider interface {
	Name() string
	GenerateJSON(ctx context.Context, prompt string, schemaName string, schema *Node) ([]byte, error)
}

// Options configures a Service
type Options struct {
	APIKey   string
	Timeout  time.Duration
	Extended bool
}

// Service builds prompts, calls the provider and validates what comes back
type Service struct {
	provider Provider
	opts     Options
	tracer   trace.Tracer
}

// NewService creates a Service. provider may be nil when the credential is unusable;
// every call then fails with ErrNotConfigured.
func NewService(provider Provider, opts Options) *Service {
	return &Service{
		provider: provider,
		opts:     opts,
		tracer:   otel.Tracer("pathfinder/generator"),
	}
}

// Configured reports whether calls can reach a provider
func (s *Service) Configured() bool {
	return s.provider != nil && CredentialUsable(s.opts.APIKey)
}

// Extended reports whether itineraries include weather and hotels
func (s *Service) Extended() bool {
	return s.opts.Extended
}

// GenerateItinerary produces a complete itinerary for req
func (s *Service) GenerateItinerary(ctx context.Context, req models.TripRequest) (*ItineraryResult, error) {
	ctx, span := s.tracer.Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("days", req.Days),
		attribute.Bool("extended", s.opts.Extended),
	))
	defer span.End()

	raw, err := s.call(ctx, "itinerary",
		planner.BuildItineraryPrompt(req, planner.ItineraryOptions{Extended: s.opts.Extended}),
		ItinerarySchema(req.Days, s.opts.Extended))
	if err != nil {
		return nil, traceError(span, err)
	}

	res, err := decodeItinerary(raw, req.Days, s.opts.Extended)
	if err != nil {
		return nil, traceError(span, fmt.Errorf("%w: %w", ErrGeneration, err))
	}
	span.SetAttributes(attribute.Int64("budget.total", res.Budget.Total))
	return res, nil
}

// GenerateAlternatives produces three replacements for one activity
func (s *Service) GenerateAlternatives(ctx context.Context, req planner.AlternativesRequest) (*AlternativesResult, error) {
	ctx, span := s.tracer.Start(ctx, "GenerateAlternatives", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.String("time_slot", req.TimeSlot),
	))
	defer span.End()

	raw, err := s.call(ctx, "alternatives", planner.BuildAlternativesPrompt(req), AlternativesSchema())
	if err != nil {
		return nil, traceError(span, err)
	}

	res, err := decodeAlternatives(raw)
	if err != nil {
		return nil, traceError(span, fmt.Errorf("%w: %w", ErrGeneration, err))
	}
	return res, nil
}

func (s *Service) call(ctx context.Context, schemaName, prompt string, schema *Node) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.provider.GenerateJSON(ctx, prompt, schemaName, schema)
	if err != nil {
		log.Printf("generator: %s %s call failed after %s: %v", s.provider.Name(), schemaName, time.Since(start), err)
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	log.Printf("generator: %s %s call took %s (%d bytes)", s.provider.Name(), schemaName, time.Since(start), len(raw))
	return raw, nil
}

func traceError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
