// Package audit defines the audit trail emitted for checklist evaluations.
package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers events that justify a lending decision and
	// must be retained with the loan file.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity useful for debugging.
	CategoryOperations EventCategory = "operations"
)

type AuditEvent string

const (
	EventChecklistGenerated AuditEvent = "checklist_generated"
	EventChecklistExplained AuditEvent = "checklist_explained"
	EventChecklistFailed    AuditEvent = "checklist_failed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventChecklistGenerated: CategoryCompliance,
	EventChecklistFailed:    CategoryCompliance,
	EventChecklistExplained: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is emitted by the checklist service for every evaluation. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// SubjectID is the loan application the event concerns.
	SubjectID string
	Action    string
	Program   string
	RequestID string
	Reason    string
	// RuleIDs lists every rule that contributed a document, in result order.
	RuleIDs            []string
	RequiredCount      int
	OptionalCount      int
	ClarificationCount int
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListBySubject(ctx context.Context, subjectID string) ([]Event, error)
}
