// Package e2e runs the Gherkin feature suite against an in-process doccheck
// server assembled exactly as cmd/server wires it.
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
	checklistHandler "doccheck/internal/checklist/handler"
	checklistMetrics "doccheck/internal/checklist/metrics"
	platformMetrics "doccheck/internal/platform/metrics"
	httptransport "doccheck/internal/transport/http"
	"doccheck/pkg/platform/audit"
	auditpublisher "doccheck/pkg/platform/audit/publisher"
	auditmemory "doccheck/pkg/platform/audit/store/memory"
)

// DefaultEvaluationDate is the clock every scenario starts with.
var DefaultEvaluationDate = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// TestContext holds one scenario's server and last response.
type TestContext struct {
	server     *httptest.Server
	client     *http.Client
	auditStore *auditmemory.InMemoryStore
	now        time.Time
	overlays   checklist.Overlays

	lastStatus int
	lastBody   []byte
}

// NewTestContext returns a context with default overlays; call Start before
// issuing requests.
func NewTestContext() *TestContext {
	return &TestContext{
		now:      DefaultEvaluationDate,
		overlays: checklist.DefaultOverlays(),
	}
}

// Start boots a fresh server. Each scenario gets its own registry and
// audit store so counts never leak between scenarios.
func (tc *TestContext) Start() {
	registry := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tc.auditStore = auditmemory.NewInMemoryStore()

	engine := checklist.NewEngine(
		checklist.WithCatalog(catalog.Default()),
		checklist.WithOverlays(tc.overlays),
	)
	service := checklist.NewService(engine,
		checklist.WithLogger(logger),
		checklist.WithMetrics(checklistMetrics.NewWithRegisterer(registry)),
		checklist.WithAuditPublisher(auditpublisher.NewPublisher(tc.auditStore)),
		checklist.WithBatchLimit(3),
	)
	router := httptransport.NewRouter(httptransport.Dependencies{
		Checklist: checklistHandler.New(service, logger),
		Metrics:   platformMetrics.NewWithRegisterer(registry),
		Gatherer:  registry,
		Logger:    logger,
		Clock:     func() time.Time { return tc.now },
	})
	tc.server = httptest.NewServer(router)
	tc.client = tc.server.Client()
}

// Stop shuts the scenario server down.
func (tc *TestContext) Stop() {
	if tc.server != nil {
		tc.server.Close()
	}
}

// SetNow pins the evaluation clock.
func (tc *TestContext) SetNow(t time.Time) { tc.now = t }

// SetOverlays replaces the process overlays. It only affects servers started
// afterwards.
func (tc *TestContext) SetOverlays(o checklist.Overlays) { tc.overlays = o }

// Overlays returns the process overlays the next Start will use.
func (tc *TestContext) Overlays() checklist.Overlays { return tc.overlays }

// Restart rebuilds the server, picking up overlay changes.
func (tc *TestContext) Restart() {
	tc.Stop()
	tc.Start()
}

// POST sends a raw JSON body.
func (tc *TestContext) POST(path, body string) error {
	return tc.do(http.MethodPost, path, strings.NewReader(body))
}

// GET issues a bodiless request.
func (tc *TestContext) GET(path string) error {
	return tc.do(http.MethodGet, path, nil)
}

func (tc *TestContext) do(method, path string, body io.Reader) error {
	req, err := http.NewRequestWithContext(context.Background(), method, tc.server.URL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	return err
}

// LastStatus is the status of the most recent response.
func (tc *TestContext) LastStatus() int { return tc.lastStatus }

// LastBody is the raw body of the most recent response.
func (tc *TestContext) LastBody() []byte { return bytes.Clone(tc.lastBody) }

// DecodeLast unmarshals the most recent response into v.
func (tc *TestContext) DecodeLast(v any) error {
	if err := json.Unmarshal(tc.lastBody, v); err != nil {
		return fmt.Errorf("decode response %q: %w", string(tc.lastBody), err)
	}
	return nil
}

// AuditEvents lists what the audit store recorded for subjectID.
func (tc *TestContext) AuditEvents(subjectID string) ([]audit.Event, error) {
	return tc.auditStore.ListBySubject(context.Background(), subjectID)
}
