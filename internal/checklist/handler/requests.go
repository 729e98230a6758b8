package handler

import (
	"fmt"
	"strings"

	"doccheck/internal/checklist"
	dErrors "doccheck/pkg/domain-errors"
)

const maxApplicationIDLength = 64

// GenerateRequest is the HTTP request body for POST /checklist and
// POST /checklist/explain.
type GenerateRequest struct {
	ApplicationID string                    `json:"application_id,omitempty"`
	Application   *checklist.LoanApplication `json:"application"`
	Overlays      *checklist.OverlayPatch    `json:"overlays,omitempty"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *GenerateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	id, err := normalizeApplicationID(r.ApplicationID)
	if err != nil {
		return err
	}
	r.ApplicationID = id

	if r.Application == nil {
		return dErrors.New(dErrors.CodeValidation, "application is required")
	}
	if err := r.Application.Validate(); err != nil {
		return err
	}
	return validateOverlays(r.Overlays)
}

// ToDomain converts the request to a service request.
func (r *GenerateRequest) ToDomain() checklist.GenerateRequest {
	return checklist.GenerateRequest{
		ApplicationID: r.ApplicationID,
		Application:   r.Application,
		Overlays:      r.Overlays,
	}
}

// BatchEntry is one application within a batch request.
type BatchEntry struct {
	ApplicationID string                    `json:"application_id,omitempty"`
	Application   *checklist.LoanApplication `json:"application"`
}

// BatchRequest is the HTTP request body for POST /checklist/batch. Overlays
// apply to every application in the batch.
type BatchRequest struct {
	Applications []BatchEntry           `json:"applications"`
	Overlays     *checklist.OverlayPatch `json:"overlays,omitempty"`
}

// Validate validates and normalizes the request. The batch size limit is
// enforced by the service.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Applications) == 0 {
		return dErrors.New(dErrors.CodeValidation, "applications must not be empty")
	}
	for i := range r.Applications {
		entry := &r.Applications[i]
		id, err := normalizeApplicationID(entry.ApplicationID)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("applications[%d]: %s", i, dErrors.MessageOf(err)))
		}
		entry.ApplicationID = id
		if entry.Application == nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("applications[%d].application is required", i))
		}
		if err := entry.Application.Validate(); err != nil {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("applications[%d]: %s", i, dErrors.MessageOf(err)))
		}
	}
	return validateOverlays(r.Overlays)
}

// ToDomain converts the request to service requests, in order.
func (r *BatchRequest) ToDomain() []checklist.GenerateRequest {
	reqs := make([]checklist.GenerateRequest, len(r.Applications))
	for i, entry := range r.Applications {
		reqs[i] = checklist.GenerateRequest{
			ApplicationID: entry.ApplicationID,
			Application:   entry.Application,
			Overlays:      r.Overlays,
		}
	}
	return reqs
}

func normalizeApplicationID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) > maxApplicationIDLength {
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("application_id must be at most %d characters", maxApplicationIDLength))
	}
	return id, nil
}

// validateOverlays range-checks a patch against the built-in defaults.
func validateOverlays(patch *checklist.OverlayPatch) error {
	if patch == nil {
		return nil
	}
	return checklist.DefaultOverlays().Apply(patch).Validate()
}
