package checklist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"doccheck/internal/checklist/catalog"
	"doccheck/internal/checklist/metrics"
	dErrors "doccheck/pkg/domain-errors"
	audit "doccheck/pkg/platform/audit"
	"doccheck/pkg/requestcontext"
)

const (
	DefaultBatchLimit       = 50
	defaultBatchConcurrency = 8
	tracerName              = "doccheck/internal/checklist"
)

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
	List(ctx context.Context, subjectID string) ([]audit.Event, error)
}

// GenerateRequest is one application to evaluate. Overlays, when set, are
// applied over the service's base overlays.
type GenerateRequest struct {
	ApplicationID string
	Application   *LoanApplication
	Overlays      *OverlayPatch
}

// Evaluation is a computed checklist together with the time it was computed for.
type Evaluation struct {
	ApplicationID string
	Result        *Result
	EvaluatedAt   time.Time
}

// Explanation is the rule-by-rule justification of a checklist.
type Explanation struct {
	ApplicationID string
	Lines         []string
	EvaluatedAt   time.Time
}

// Service wraps the Engine with validation, logging, metrics, tracing and
// the audit trail.
type Service struct {
	engine           *Engine
	logger           *slog.Logger
	metrics          *metrics.Metrics
	auditPublisher   AuditPublisher
	tracer           trace.Tracer
	batchLimit       int
	batchConcurrency int
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithBatchLimit caps the number of applications per batch.
func WithBatchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchLimit = n
		}
	}
}

// WithBatchConcurrency caps concurrent evaluations within one batch.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// NewService constructs a Service around engine.
func NewService(engine *Engine, opts ...Option) *Service {
	s := &Service{
		engine:           engine,
		logger:           slog.Default(),
		batchLimit:       DefaultBatchLimit,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Generate evaluates one application as of the request-scoped time.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Evaluation, error) {
	ctx, span := s.tracer.Start(ctx, "checklist.Generate")
	defer span.End()

	eval, err := s.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, dErrors.MessageOf(err))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("checklist.application_id", eval.ApplicationID),
		attribute.Int("checklist.required_count", len(eval.Result.Required)),
		attribute.Int("checklist.nice_to_have_count", len(eval.Result.NiceToHave)),
	)
	s.emitAudit(ctx, audit.EventChecklistGenerated, req, eval)
	return eval, nil
}

// Explain evaluates one application and returns its explanation lines.
func (s *Service) Explain(ctx context.Context, req GenerateRequest) (*Explanation, error) {
	ctx, span := s.tracer.Start(ctx, "checklist.Explain")
	defer span.End()

	eval, err := s.generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, dErrors.MessageOf(err))
		return nil, err
	}
	s.emitAudit(ctx, audit.EventChecklistExplained, req, eval)
	return &Explanation{
		ApplicationID: eval.ApplicationID,
		Lines:         Explain(eval.Result),
		EvaluatedAt:   eval.EvaluatedAt,
	}, nil
}

// GenerateBatch evaluates every request concurrently, sharing one evaluation
// time. Results are in request order. Any failure fails the whole batch.
func (s *Service) GenerateBatch(ctx context.Context, reqs []GenerateRequest) ([]*Evaluation, error) {
	if len(reqs) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "applications must not be empty")
	}
	if len(reqs) > s.batchLimit {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("batch of %d exceeds limit of %d applications", len(reqs), s.batchLimit))
	}
	if !requestcontext.HasTime(ctx) {
		ctx = requestcontext.WithTime(ctx, time.Now())
	}

	ctx, span := s.tracer.Start(ctx, "checklist.GenerateBatch",
		trace.WithAttributes(attribute.Int("checklist.batch_size", len(reqs))))
	defer span.End()

	results := make([]*Evaluation, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeTimeout, "batch cancelled")
			}
			eval, err := s.generate(gctx, req)
			if err != nil {
				return dErrors.New(dErrors.CodeOf(err), fmt.Sprintf("applications[%d]: %s", i, dErrors.MessageOf(err)))
			}
			results[i] = eval
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, dErrors.MessageOf(err))
		return nil, err
	}

	for i, eval := range results {
		s.emitAudit(ctx, audit.EventChecklistGenerated, reqs[i], eval)
	}
	return results, nil
}

// AuditTrail returns the retained audit events for one application, oldest
// first.
func (s *Service) AuditTrail(ctx context.Context, applicationID string) ([]audit.Event, error) {
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "application_id is required")
	}
	if s.auditPublisher == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "audit trail is not recorded")
	}
	events, err := s.auditPublisher.List(ctx, applicationID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail")
	}
	if len(events) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no audit events for application")
	}
	return events, nil
}

// Rules lists the rule table.
func (s *Service) Rules() []RuleInfo {
	return Rules()
}

// Documents lists the document catalog.
func (s *Service) Documents() []catalog.Entry {
	return catalog.Default().All()
}

func (s *Service) generate(ctx context.Context, req GenerateRequest) (*Evaluation, error) {
	requestID := requestcontext.RequestID(ctx)
	now := requestcontext.Now(ctx)
	start := time.Now()

	app := req.Application
	if app == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "loan application is required")
	}
	program := string(app.Program)
	if err := app.Validate(); err != nil {
		s.metrics.IncrementEvaluation(program, "invalid")
		return nil, err
	}

	applicationID := req.ApplicationID
	if applicationID == "" {
		applicationID = uuid.NewString()
	}

	result, err := s.engine.Generate(app, req.Overlays, now)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	if err != nil {
		outcome := "failed"
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			outcome = "invalid"
		}
		s.metrics.IncrementEvaluation(program, outcome)
		s.logger.ErrorContext(ctx, "checklist evaluation failed",
			"request_id", requestID,
			"application_id", applicationID,
			"program", program,
			"error", err,
		)
		if outcome == "failed" {
			s.emitFailure(ctx, applicationID, program, err)
		}
		return nil, err
	}

	ruleIDs := RuleHits(result)
	s.metrics.IncrementEvaluation(program, "ok")
	s.metrics.ObserveDocuments(len(result.Required), len(result.NiceToHave))
	s.metrics.IncrementRuleHits(ruleIDs)
	if len(result.Clarifications) > 0 {
		s.metrics.IncrementClarifications()
	}

	s.logger.InfoContext(ctx, "checklist generated",
		"request_id", requestID,
		"application_id", applicationID,
		"program", program,
		"required_count", len(result.Required),
		"nice_to_have_count", len(result.NiceToHave),
		"clarification_count", len(result.Clarifications),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &Evaluation{
		ApplicationID: applicationID,
		Result:        result,
		EvaluatedAt:   now,
	}, nil
}

func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, req GenerateRequest, eval *Evaluation) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Event{
		Timestamp:          eval.EvaluatedAt,
		SubjectID:          eval.ApplicationID,
		Action:             string(action),
		Program:            string(req.Application.Program),
		RequestID:          requestcontext.RequestID(ctx),
		RuleIDs:            RuleHits(eval.Result),
		RequiredCount:      len(eval.Result.Required),
		OptionalCount:      len(eval.Result.NiceToHave),
		ClarificationCount: len(eval.Result.Clarifications),
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"application_id", event.SubjectID,
			"action", event.Action,
			"error", err,
		)
	}
}

func (s *Service) emitFailure(ctx context.Context, applicationID, program string, cause error) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		SubjectID: applicationID,
		Action:    string(audit.EventChecklistFailed),
		Program:   program,
		RequestID: requestcontext.RequestID(ctx),
		Reason:    cause.Error(),
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"application_id", applicationID,
			"action", event.Action,
			"error", err,
		)
	}
}
