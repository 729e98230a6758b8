package checklist

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cucumber/godog"

	checklistHandler "doccheck/internal/checklist/handler"
	"doccheck/pkg/platform/audit"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	DecodeLast(v any) error
	AuditEvents(subjectID string) ([]audit.Event, error)
}

// RegisterSteps registers checklist content assertions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &checklistSteps{tc: tc}

	// Document lists
	ctx.Step(`^the required documents should include "([^"]*)"$`, steps.requiredShouldInclude)
	ctx.Step(`^the required documents should not include "([^"]*)"$`, steps.requiredShouldNotInclude)
	ctx.Step(`^the required documents should start with "([^"]*)"$`, steps.requiredShouldStartWith)
	ctx.Step(`^the nice to have documents should be "([^"]*)"$`, steps.niceToHaveShouldBe)

	// Provenance
	ctx.Step(`^document "([^"]*)" should have rule hits "([^"]*)"$`, steps.ruleHitsShouldBe)
	ctx.Step(`^document "([^"]*)" should be scoped to "([^"]*)"$`, steps.scopeShouldBe)

	// Clarifications and explanations
	ctx.Step(`^the clarifications should include "([^"]*)"$`, steps.clarificationsShouldInclude)
	ctx.Step(`^there should be no clarifications$`, steps.noClarifications)
	ctx.Step(`^the explanations should include "([^"]*)"$`, steps.explanationsShouldInclude)

	// Batch and audit
	ctx.Step(`^batch result (\d+) should be for application "([^"]*)"$`, steps.batchResultFor)
	ctx.Step(`^(\d+) audit events? should be recorded for "([^"]*)"$`, steps.auditEventsRecorded)
}

type checklistSteps struct {
	tc TestContext
}

func (s *checklistSteps) checklist() (*checklistHandler.ChecklistResponse, error) {
	var resp checklistHandler.ChecklistResponse
	if err := s.tc.DecodeLast(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func ids(docs []checklistHandler.DocumentResponse) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return []string{}
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (s *checklistSteps) requiredShouldInclude(_ context.Context, list string) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	got := ids(resp.Required)
	for _, id := range splitList(list) {
		if !slices.Contains(got, id) {
			return fmt.Errorf("required documents %v do not include %s", got, id)
		}
	}
	return nil
}

func (s *checklistSteps) requiredShouldNotInclude(_ context.Context, list string) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	got := ids(resp.Required)
	for _, id := range splitList(list) {
		if slices.Contains(got, id) {
			return fmt.Errorf("required documents %v unexpectedly include %s", got, id)
		}
	}
	return nil
}

func (s *checklistSteps) requiredShouldStartWith(_ context.Context, list string) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	want := splitList(list)
	got := ids(resp.Required)
	if len(got) < len(want) || !slices.Equal(got[:len(want)], want) {
		return fmt.Errorf("required documents %v do not start with %v", got, want)
	}
	return nil
}

func (s *checklistSteps) niceToHaveShouldBe(_ context.Context, list string) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	if got, want := ids(resp.NiceToHave), splitList(list); !slices.Equal(got, want) {
		return fmt.Errorf("expected nice to have %v, got %v", want, got)
	}
	return nil
}

func (s *checklistSteps) find(id string) (*checklistHandler.DocumentResponse, error) {
	resp, err := s.checklist()
	if err != nil {
		return nil, err
	}
	for _, list := range [][]checklistHandler.DocumentResponse{resp.Required, resp.NiceToHave} {
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}
	return nil, fmt.Errorf("document %s not in checklist", id)
}

func (s *checklistSteps) ruleHitsShouldBe(_ context.Context, id, hits string) error {
	doc, err := s.find(id)
	if err != nil {
		return err
	}
	if want := splitList(hits); !slices.Equal(doc.RuleHits, want) {
		return fmt.Errorf("document %s: expected rule hits %v, got %v", id, want, doc.RuleHits)
	}
	return nil
}

func (s *checklistSteps) scopeShouldBe(_ context.Context, id, scope string) error {
	doc, err := s.find(id)
	if err != nil {
		return err
	}
	if want := splitList(scope); !slices.Equal(doc.ProgramScope, want) {
		return fmt.Errorf("document %s: expected program scope %v, got %v", id, want, doc.ProgramScope)
	}
	return nil
}

func (s *checklistSteps) clarificationsShouldInclude(_ context.Context, message string) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	if !slices.Contains(resp.Clarifications, message) {
		return fmt.Errorf("clarifications %q do not include %q", resp.Clarifications, message)
	}
	return nil
}

func (s *checklistSteps) noClarifications(context.Context) error {
	resp, err := s.checklist()
	if err != nil {
		return err
	}
	if len(resp.Clarifications) != 0 {
		return fmt.Errorf("expected no clarifications, got %q", resp.Clarifications)
	}
	return nil
}

func (s *checklistSteps) explanationsShouldInclude(_ context.Context, line string) error {
	var resp checklistHandler.ExplainResponse
	if err := s.tc.DecodeLast(&resp); err != nil {
		return err
	}
	if !slices.Contains(resp.Explanations, line) {
		return fmt.Errorf("explanations %q do not include %q", resp.Explanations, line)
	}
	return nil
}

func (s *checklistSteps) batchResultFor(_ context.Context, index int, applicationID string) error {
	var resp checklistHandler.BatchResponse
	if err := s.tc.DecodeLast(&resp); err != nil {
		return err
	}
	if index < 1 || index > len(resp.Results) {
		return fmt.Errorf("batch has %d results, no result %d", len(resp.Results), index)
	}
	if got := resp.Results[index-1].ApplicationID; got != applicationID {
		return fmt.Errorf("batch result %d: expected application %q, got %q", index, applicationID, got)
	}
	return nil
}

func (s *checklistSteps) auditEventsRecorded(_ context.Context, count int, subjectID string) error {
	events, err := s.tc.AuditEvents(subjectID)
	if err != nil {
		return err
	}
	if len(events) != count {
		return fmt.Errorf("expected %d audit events for %s, got %d", count, subjectID, len(events))
	}
	return nil
}
