package handler

import (
	"time"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
	audit "doccheck/pkg/platform/audit"
)

// DocumentResponse is one document of a checklist.
type DocumentResponse struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Reason       string   `json:"reason"`
	RuleHits     []string `json:"rule_hits"`
	Conditional  bool     `json:"conditional"`
	ProgramScope []string `json:"program_scope,omitempty"`
}

// ChecklistResponse is the HTTP response for POST /checklist.
type ChecklistResponse struct {
	ApplicationID  string             `json:"application_id"`
	Required       []DocumentResponse `json:"required"`
	NiceToHave     []DocumentResponse `json:"nice_to_have"`
	Clarifications []string           `json:"clarifications"`
	EvaluatedAt    time.Time          `json:"evaluated_at"`
}

// ExplainResponse is the HTTP response for POST /checklist/explain.
type ExplainResponse struct {
	ApplicationID string    `json:"application_id"`
	Explanations  []string  `json:"explanations"`
	EvaluatedAt   time.Time `json:"evaluated_at"`
}

// BatchResponse is the HTTP response for POST /checklist/batch.
type BatchResponse struct {
	Results []*ChecklistResponse `json:"results"`
}

type DocumentsResponse struct {
	Documents []catalog.Entry `json:"documents"`
}

type RulesResponse struct {
	Rules []checklist.RuleInfo `json:"rules"`
}

// AuditEventResponse is one recorded evaluation of an application.
type AuditEventResponse struct {
	Action             string    `json:"action"`
	Category           string    `json:"category"`
	Timestamp          time.Time `json:"timestamp"`
	Program            string    `json:"program,omitempty"`
	RequestID          string    `json:"request_id,omitempty"`
	Reason             string    `json:"reason,omitempty"`
	RuleIDs            []string  `json:"rule_ids"`
	RequiredCount      int       `json:"required_count"`
	OptionalCount      int       `json:"nice_to_have_count"`
	ClarificationCount int       `json:"clarification_count"`
}

// AuditTrailResponse is the HTTP response for GET /checklist/audit/{application_id}.
type AuditTrailResponse struct {
	ApplicationID string               `json:"application_id"`
	Events        []AuditEventResponse `json:"events"`
}

// FromEvaluation converts a domain Evaluation to an HTTP response.
func FromEvaluation(eval *checklist.Evaluation) *ChecklistResponse {
	return &ChecklistResponse{
		ApplicationID:  eval.ApplicationID,
		Required:       fromDocs(eval.Result.Required),
		NiceToHave:     fromDocs(eval.Result.NiceToHave),
		Clarifications: nonNil(eval.Result.Clarifications),
		EvaluatedAt:    eval.EvaluatedAt,
	}
}

// FromExplanation converts a domain Explanation to an HTTP response.
func FromExplanation(explanation *checklist.Explanation) *ExplainResponse {
	return &ExplainResponse{
		ApplicationID: explanation.ApplicationID,
		Explanations:  nonNil(explanation.Lines),
		EvaluatedAt:   explanation.EvaluatedAt,
	}
}

// FromAuditTrail converts stored audit events to an HTTP response.
func FromAuditTrail(applicationID string, events []audit.Event) *AuditTrailResponse {
	resp := &AuditTrailResponse{ApplicationID: applicationID, Events: make([]AuditEventResponse, len(events))}
	for i, e := range events {
		resp.Events[i] = AuditEventResponse{
			Action:             e.Action,
			Category:           string(e.Category),
			Timestamp:          e.Timestamp,
			Program:            e.Program,
			RequestID:          e.RequestID,
			Reason:             e.Reason,
			RuleIDs:            nonNil(e.RuleIDs),
			RequiredCount:      e.RequiredCount,
			OptionalCount:      e.OptionalCount,
			ClarificationCount: e.ClarificationCount,
		}
	}
	return resp
}

func fromDocs(docs []checklist.DocRequest) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = DocumentResponse{
			ID:          d.ID,
			Label:       d.Label,
			Reason:      d.Reason,
			RuleHits:    nonNil(d.RuleHits),
			Conditional: d.Conditional,
		}
		for _, p := range d.ProgramScope {
			out[i].ProgramScope = append(out[i].ProgramScope, string(p))
		}
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
