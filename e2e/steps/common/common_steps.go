package common

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"doccheck/internal/checklist"
	"doccheck/pkg/platform/httputil"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path, body string) error
	GET(path string) error
	LastStatus() int
	LastBody() []byte
	DecodeLast(v any) error
	SetNow(t time.Time)
	Overlays() checklist.Overlays
	SetOverlays(o checklist.Overlays)
	Restart()
}

// RegisterSteps registers lifecycle, request and status steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	// Background
	ctx.Step(`^the evaluation date is "(\d{4}-\d{2}-\d{2})"$`, steps.evaluationDate)
	ctx.Step(`^the lender does not require condo documents$`, steps.condoDocsOff)
	ctx.Step(`^the lender defaults business returns to (\d+) years?$`, steps.businessReturnsDefault)

	// Requests
	ctx.Step(`^I POST to "([^"]*)" with:$`, steps.post)
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)

	// Assertions
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the error code should be "([^"]*)"$`, steps.errorCodeShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) evaluationDate(_ context.Context, date string) error {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	s.tc.SetNow(t.Add(12 * time.Hour))
	return nil
}

func (s *commonSteps) condoDocsOff(context.Context) error {
	o := s.tc.Overlays()
	o.RequireCondoDocs = false
	s.tc.SetOverlays(o)
	s.tc.Restart()
	return nil
}

func (s *commonSteps) businessReturnsDefault(_ context.Context, years string) error {
	n, err := strconv.Atoi(years)
	if err != nil {
		return err
	}
	o := s.tc.Overlays()
	o.DefaultBusinessReturnsYears = n
	if err := o.Validate(); err != nil {
		return err
	}
	s.tc.SetOverlays(o)
	s.tc.Restart()
	return nil
}

func (s *commonSteps) post(_ context.Context, path string, body *godog.DocString) error {
	return s.tc.POST(path, body.Content)
}

func (s *commonSteps) get(_ context.Context, path string) error {
	return s.tc.GET(path)
}

func (s *commonSteps) statusShouldBe(_ context.Context, status int) error {
	if got := s.tc.LastStatus(); got != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, got, s.tc.LastBody())
	}
	return nil
}

func (s *commonSteps) errorCodeShouldBe(_ context.Context, code string) error {
	var resp httputil.ErrorResponse
	if err := s.tc.DecodeLast(&resp); err != nil {
		return err
	}
	if resp.Error != code {
		return fmt.Errorf("expected error code %q, got %q (%s)", code, resp.Error, resp.ErrorDescription)
	}
	return nil
}
