package checklist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"doccheck/internal/checklist/catalog"
	"doccheck/internal/checklist/metrics"
	dErrors "doccheck/pkg/domain-errors"
	audit "doccheck/pkg/platform/audit"
	"doccheck/pkg/platform/audit/publisher"
	"doccheck/pkg/platform/audit/store/memory"
	"doccheck/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.InMemoryStore
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), evalTime), "req-123")
	s.store = memory.NewInMemoryStore()
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.service = NewService(NewEngine(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(publisher.NewPublisher(s.store)),
		WithBatchLimit(3),
	)
}

// -----------------------------------------------------------------------------
// Generate
// -----------------------------------------------------------------------------

func (s *ServiceSuite) TestGenerateUsesRequestTime() {
	eval, err := s.service.Generate(s.ctx, GenerateRequest{
		ApplicationID: "app-1",
		Application:   selfEmployedLLC(ProgramConventional),
	})
	s.Require().NoError(err)

	s.Equal("app-1", eval.ApplicationID)
	s.Equal(evalTime, eval.EvaluatedAt)
	s.Contains(IDs(eval.Result.Required), "TAX_RETURN_PERSONAL_1040_YEARS_1")
}

func (s *ServiceSuite) TestGenerateAssignsApplicationID() {
	eval, err := s.service.Generate(s.ctx, GenerateRequest{Application: &LoanApplication{}})
	s.Require().NoError(err)
	s.NotEmpty(eval.ApplicationID)
}

func (s *ServiceSuite) TestGenerateEmitsAudit() {
	_, err := s.service.Generate(s.ctx, GenerateRequest{
		ApplicationID: "app-audit",
		Application:   &LoanApplication{Program: ProgramFHA, EmploymentType: EmploymentW2},
	})
	s.Require().NoError(err)

	events, err := s.store.ListBySubject(s.ctx, "app-audit")
	s.Require().NoError(err)
	s.Require().Len(events, 1)

	event := events[0]
	s.Equal(string(audit.EventChecklistGenerated), event.Action)
	s.Equal(audit.CategoryCompliance, event.Category)
	s.Equal("FHA", event.Program)
	s.Equal("req-123", event.RequestID)
	s.Equal(evalTime, event.Timestamp)
	s.Contains(event.RuleIDs, "R-FHA-01")
	s.Positive(event.RequiredCount)
}

func (s *ServiceSuite) TestGenerateRecordsMetrics() {
	_, err := s.service.Generate(s.ctx, GenerateRequest{Application: &LoanApplication{Program: ProgramVA}})
	s.Require().NoError(err)

	s.InDelta(1, testutil.ToFloat64(s.metrics.Evaluations.WithLabelValues("VA", "ok")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.RuleHits.WithLabelValues("R-VA-01")), 0)
	// VA without detail and no employment type
	s.InDelta(1, testutil.ToFloat64(s.metrics.Clarifications), 0)
}

func (s *ServiceSuite) TestGenerateRejectsInvalidApplication() {
	eval, err := s.service.Generate(s.ctx, GenerateRequest{
		ApplicationID: "app-bad",
		Application:   &LoanApplication{Program: "Jumbo"},
	})
	s.Nil(eval)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.InDelta(1, testutil.ToFloat64(s.metrics.Evaluations.WithLabelValues("Jumbo", "invalid")), 0)

	events, _ := s.store.ListBySubject(s.ctx, "app-bad")
	s.Empty(events)
}

func (s *ServiceSuite) TestGenerateRejectsNilApplication() {
	_, err := s.service.Generate(s.ctx, GenerateRequest{})
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *ServiceSuite) TestAuditFailureIsNotSurfaced() {
	service := NewService(NewEngine(),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(failingPublisher{}),
	)
	eval, err := service.Generate(s.ctx, GenerateRequest{Application: &LoanApplication{}})
	s.Require().NoError(err)
	s.NotNil(eval)
}

// -----------------------------------------------------------------------------
// Explain
// -----------------------------------------------------------------------------

func (s *ServiceSuite) TestExplain() {
	explanation, err := s.service.Explain(s.ctx, GenerateRequest{
		ApplicationID: "app-explain",
		Application:   &LoanApplication{Program: ProgramConventional, EmploymentType: EmploymentW2},
	})
	s.Require().NoError(err)
	s.Equal("app-explain", explanation.ApplicationID)
	s.Contains(explanation.Lines, "R-E-01: W2 employment - recent paystub")

	events, _ := s.store.ListBySubject(s.ctx, "app-explain")
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventChecklistExplained), events[0].Action)
}

// -----------------------------------------------------------------------------
// Batch
// -----------------------------------------------------------------------------

func (s *ServiceSuite) TestGenerateBatchPreservesOrder() {
	reqs := []GenerateRequest{
		{ApplicationID: "a", Application: selfEmployedLLC(ProgramConventional)},
		{ApplicationID: "b", Application: selfEmployedLLC(ProgramFHA)},
		{ApplicationID: "c", Application: &LoanApplication{Program: ProgramUSDA}},
	}

	evals, err := s.service.GenerateBatch(s.ctx, reqs)
	s.Require().NoError(err)
	s.Require().Len(evals, 3)

	for i, eval := range evals {
		s.Equal(reqs[i].ApplicationID, eval.ApplicationID)
		s.Equal(evalTime, eval.EvaluatedAt)
	}
	s.Contains(IDs(evals[0].Result.Required), "TAX_RETURN_PERSONAL_1040_YEARS_1")
	s.Contains(IDs(evals[1].Result.Required), "TAX_RETURN_PERSONAL_1040_YEARS_2")
	s.Contains(evals[2].Result.Clarifications, ClarifyUSDAHousehold)

	for _, req := range reqs {
		events, _ := s.store.ListBySubject(s.ctx, req.ApplicationID)
		s.Len(events, 1, req.ApplicationID)
	}
}

func (s *ServiceSuite) TestGenerateBatchLimit() {
	reqs := make([]GenerateRequest, 4)
	for i := range reqs {
		reqs[i] = GenerateRequest{ApplicationID: fmt.Sprintf("app-%d", i), Application: &LoanApplication{}}
	}
	_, err := s.service.GenerateBatch(s.ctx, reqs)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.GenerateBatch(s.ctx, nil)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestGenerateBatchFailsWhole() {
	reqs := []GenerateRequest{
		{ApplicationID: "ok", Application: &LoanApplication{}},
		{ApplicationID: "bad", Application: &LoanApplication{EmploymentType: "Gig"}},
	}
	evals, err := s.service.GenerateBatch(s.ctx, reqs)
	s.Nil(evals)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(dErrors.MessageOf(err), "applications[1]")

	for _, req := range reqs {
		events, _ := s.store.ListBySubject(s.ctx, req.ApplicationID)
		s.Empty(events, req.ApplicationID)
	}
}

// -----------------------------------------------------------------------------
// Audit trail
// -----------------------------------------------------------------------------

func (s *ServiceSuite) TestAuditTrail() {
	req := GenerateRequest{ApplicationID: "app-trail", Application: &LoanApplication{Program: ProgramVA}}
	_, err := s.service.Generate(s.ctx, req)
	s.Require().NoError(err)
	_, err = s.service.Explain(s.ctx, req)
	s.Require().NoError(err)

	events, err := s.service.AuditTrail(s.ctx, " app-trail ")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventChecklistGenerated), events[0].Action)
	s.Equal(string(audit.EventChecklistExplained), events[1].Action)
	s.Equal("req-123", events[0].RequestID)
}

func (s *ServiceSuite) TestAuditTrailErrors() {
	_, err := s.service.AuditTrail(s.ctx, "  ")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.AuditTrail(s.ctx, "never-seen")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	bare := NewService(NewEngine())
	_, err = bare.AuditTrail(s.ctx, "app-1")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	failing := NewService(NewEngine(), WithAuditPublisher(failingPublisher{}))
	_, err = failing.AuditTrail(s.ctx, "app-1")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

// -----------------------------------------------------------------------------
// Listings
// -----------------------------------------------------------------------------

func (s *ServiceSuite) TestListings() {
	s.Equal(Rules(), s.service.Rules())
	s.Equal(catalog.Default().All(), s.service.Documents())
}

type failingPublisher struct{}

func (failingPublisher) Emit(context.Context, audit.Event) error {
	return errors.New("audit sink unavailable")
}

func (failingPublisher) List(context.Context, string) ([]audit.Event, error) {
	return nil, errors.New("audit sink unavailable")
}
