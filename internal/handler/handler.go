// Package handler exposes the audit as a single invocation entry point that
// returns a status code and a serialized report body.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"s3audit/internal/models"
)

// Auditor produces the bucket privacy report.
type Auditor interface {
	Audit(ctx context.Context) (models.Report, error)
}

type Handler struct {
	auditor Auditor
	logger  zerolog.Logger
}

func New(auditor Auditor, logger zerolog.Logger) *Handler {
	return &Handler{auditor: auditor, logger: logger}
}

// Handle runs one audit. The event payload is accepted for compatibility and
// otherwise ignored. A listing failure is returned as an error; there is no
// non-200 response.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (*models.InvocationResponse, error) {
	h.logger.Debug().Int("event_bytes", len(event)).Msg("invocation received")

	report, err := h.auditor.Audit(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	// Logged without a level so LOG_LEVEL never filters the result out.
	h.logger.Log().Msg("Audit Result: " + string(body))

	return &models.InvocationResponse{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}
