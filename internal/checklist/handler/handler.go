package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"doccheck/internal/checklist"
	"doccheck/internal/checklist/catalog"
	audit "doccheck/pkg/platform/audit"
	"doccheck/pkg/platform/httputil"
	"doccheck/pkg/requestcontext"
)

// Service defines the interface for checklist operations.
type Service interface {
	Generate(ctx context.Context, req checklist.GenerateRequest) (*checklist.Evaluation, error)
	Explain(ctx context.Context, req checklist.GenerateRequest) (*checklist.Explanation, error)
	GenerateBatch(ctx context.Context, reqs []checklist.GenerateRequest) ([]*checklist.Evaluation, error)
	AuditTrail(ctx context.Context, applicationID string) ([]audit.Event, error)
	Rules() []checklist.RuleInfo
	Documents() []catalog.Entry
}

// Handler wires checklist endpoints to the checklist service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a checklist handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts checklist endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/checklist", h.HandleGenerate)
	r.Post("/checklist/explain", h.HandleExplain)
	r.Post("/checklist/batch", h.HandleBatch)
	r.Get("/checklist/documents", h.HandleDocuments)
	r.Get("/checklist/rules", h.HandleRules)
	r.Get("/checklist/audit/{application_id}", h.HandleAuditTrail)
}

// HandleGenerate handles POST /checklist requests.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	eval, err := h.service.Generate(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "checklist generation failed",
			"request_id", requestID,
			"application_id", req.ApplicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "checklist served",
		"request_id", requestID,
		"application_id", eval.ApplicationID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromEvaluation(eval))
}

// HandleExplain handles POST /checklist/explain requests.
func (h *Handler) HandleExplain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[GenerateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	explanation, err := h.service.Explain(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "checklist explanation failed",
			"request_id", requestID,
			"application_id", req.ApplicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromExplanation(explanation))
}

// HandleBatch handles POST /checklist/batch requests.
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	evals, err := h.service.GenerateBatch(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "checklist batch failed",
			"request_id", requestID,
			"batch_size", len(req.Applications),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := BatchResponse{Results: make([]*ChecklistResponse, len(evals))}
	for i, eval := range evals {
		resp.Results[i] = FromEvaluation(eval)
	}
	h.logger.InfoContext(ctx, "checklist batch served",
		"request_id", requestID,
		"batch_size", len(evals),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleDocuments handles GET /checklist/documents requests.
func (h *Handler) HandleDocuments(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, DocumentsResponse{Documents: h.service.Documents()})
}

// HandleRules handles GET /checklist/rules requests.
func (h *Handler) HandleRules(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, RulesResponse{Rules: h.service.Rules()})
}

// HandleAuditTrail handles GET /checklist/audit/{application_id} requests.
func (h *Handler) HandleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	applicationID := chi.URLParam(r, "application_id")

	events, err := h.service.AuditTrail(ctx, applicationID)
	if err != nil {
		h.logger.WarnContext(ctx, "audit trail lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"application_id", applicationID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromAuditTrail(applicationID, events))
}
